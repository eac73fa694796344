package badge

import (
	"fmt"
	"strings"
)

// Style is one preset visual treatment. Declarations never touch font
// size, weight or style; those come from the inline attributes of the
// rendered badge.
type Style struct {
	ID    int
	Name  string
	Rules []string
	Hover []string
}

var styles = []Style{
	{
		ID:   1,
		Name: "Classic",
		Rules: []string{
			"position: absolute", "top: 10px", "left: 10px", "z-index: 9",
			"color: #ffffff", "background: #e2401c",
			"border: none", "border-radius: 3px",
			"padding: 4px 10px", "line-height: 1.4",
			"box-shadow: none",
			"transition: background-color .2s ease",
		},
		Hover: []string{"background: #c2330f"},
	},
	{
		ID:   2,
		Name: "Pill",
		Rules: []string{
			"position: absolute", "top: 10px", "right: 10px", "z-index: 9",
			"color: #ffffff", "background: #2e7d32",
			"border: none", "border-radius: 999px",
			"padding: 4px 14px", "line-height: 1.4",
			"box-shadow: 0 2px 4px rgba(0, 0, 0, .15)",
			"transition: transform .2s ease",
		},
		Hover: []string{"transform: scale(1.05)"},
	},
	{
		ID:   3,
		Name: "Ribbon",
		Rules: []string{
			"position: absolute", "top: 14px", "left: -6px", "z-index: 9",
			"color: #ffffff", "background: #b71c1c",
			"border: none", "border-radius: 0 3px 3px 0",
			"padding: 5px 12px 5px 16px", "line-height: 1.3",
			"box-shadow: 2px 2px 0 rgba(0, 0, 0, .25)",
			"text-transform: uppercase", "letter-spacing: .05em",
			"transition: left .2s ease",
		},
		Hover: []string{"left: 0"},
	},
	{
		ID:   4,
		Name: "Outline",
		Rules: []string{
			"position: absolute", "top: 10px", "left: 10px", "z-index: 9",
			"color: #e2401c", "background: #ffffff",
			"border: 2px solid #e2401c", "border-radius: 4px",
			"padding: 3px 9px", "line-height: 1.4",
			"box-shadow: none",
			"transition: color .2s ease, background-color .2s ease",
		},
		Hover: []string{"color: #ffffff", "background: #e2401c"},
	},
	{
		ID:   5,
		Name: "Gradient",
		Rules: []string{
			"position: absolute", "top: 10px", "left: 10px", "z-index: 9",
			"color: #ffffff", "background: linear-gradient(135deg, #ff512f 0%, #dd2476 100%)",
			"border: none", "border-radius: 6px",
			"padding: 5px 12px", "line-height: 1.4",
			"box-shadow: 0 3px 8px rgba(221, 36, 118, .35)",
			"transition: box-shadow .2s ease",
		},
		Hover: []string{"box-shadow: 0 5px 14px rgba(221, 36, 118, .5)"},
	},
	{
		ID:   6,
		Name: "Circle",
		Rules: []string{
			"position: absolute", "top: -8px", "right: -8px", "z-index: 9",
			"color: #ffffff", "background: #ff9800",
			"border: 2px solid #ffffff", "border-radius: 50%",
			"min-width: 3.2em", "min-height: 3.2em", "padding: 0 6px",
			"display: flex", "align-items: center", "justify-content: center",
			"box-shadow: 0 2px 6px rgba(0, 0, 0, .2)",
			"transition: transform .3s ease",
		},
		Hover: []string{"transform: rotate(-10deg)"},
	},
	{
		ID:   7,
		Name: "Dark",
		Rules: []string{
			"position: absolute", "top: 10px", "left: 10px", "z-index: 9",
			"color: #ffd54f", "background: #212121",
			"border: 1px solid #424242", "border-radius: 2px",
			"padding: 4px 10px", "line-height: 1.4",
			"box-shadow: 0 1px 3px rgba(0, 0, 0, .4)",
			"text-transform: uppercase", "letter-spacing: .08em",
			"transition: color .2s ease",
		},
		Hover: []string{"color: #ffffff"},
	},
	{
		ID:   8,
		Name: "Corner tag",
		Rules: []string{
			"position: absolute", "top: 0", "right: 0", "z-index: 9",
			"color: #ffffff", "background: #1565c0",
			"border: none", "border-radius: 0 0 0 12px",
			"padding: 6px 12px", "line-height: 1.3",
			"box-shadow: -2px 2px 4px rgba(0, 0, 0, .15)",
			"transition: padding .2s ease",
		},
		Hover: []string{"padding: 8px 14px"},
	},
	{
		ID:   9,
		Name: "Neon",
		Rules: []string{
			"position: absolute", "top: 10px", "left: 10px", "z-index: 9",
			"color: #39ff14", "background: #0b0b0b",
			"border: 1px solid #39ff14", "border-radius: 4px",
			"padding: 4px 10px", "line-height: 1.4",
			"box-shadow: 0 0 6px #39ff14, inset 0 0 4px #39ff14",
			"text-shadow: 0 0 4px #39ff14",
			"transition: box-shadow .2s ease",
		},
		Hover: []string{"box-shadow: 0 0 12px #39ff14, inset 0 0 6px #39ff14"},
	},
	{
		ID:   10,
		Name: "Minimal",
		Rules: []string{
			"position: absolute", "bottom: 10px", "left: 10px", "z-index: 9",
			"color: #333333", "background: rgba(255, 255, 255, .9)",
			"border: none", "border-bottom: 2px solid #e2401c", "border-radius: 0",
			"padding: 2px 4px", "line-height: 1.3",
			"box-shadow: none",
			"transition: border-color .2s ease",
		},
		Hover: []string{"border-bottom-color: #333333"},
	},
}

// StyleName returns the display name of a style, or "" for unknown ids.
func StyleName(styleID int) string {
	for _, s := range styles {
		if s.ID == styleID {
			return s.Name
		}
	}
	return ""
}

var stylesheet = buildStylesheet()

// RenderStylesheet returns the rules for every style. The output does not
// depend on the stored configuration.
func RenderStylesheet() string {
	return stylesheet
}

func buildStylesheet() string {
	var b strings.Builder
	for _, s := range styles {
		selector := fmt.Sprintf(".%s.%s%d", ClassBase, ClassStylePrefix, s.ID)
		fmt.Fprintf(&b, "/* style-%d: %s */\n", s.ID, s.Name)
		writeRule(&b, selector, s.Rules)
		writeRule(&b, selector+":hover", s.Hover)
	}
	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []string) {
	if len(decls) == 0 {
		return
	}
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("\t")
		b.WriteString(d)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}
