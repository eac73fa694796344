package badge

// CSS classes carried by every rendered badge
const (
	// ClassStorefront keeps theme selectors written for the stock badge working.
	ClassStorefront  = "onsale"
	ClassBase        = "wsc-badge"
	ClassStylePrefix = "style-"
)

// Font style values
const (
	FontStyleNormal = "normal"
	FontStyleItalic = "italic"
)

// Validation tags used by the normalizer
const (
	tagStyleRange    = "min=1,max=10"
	tagFontSizeRange = "min=8,max=24"
	tagFontWeight    = "oneof=400 500 600 700 800"
)

// maxLabelPasses bounds how many layers of entity encoding NormalizeLabel
// peels off a label
const maxLabelPasses = 8

// Log messages
const (
	LogMsgRenderFailed = "Failed to render sale badge"
)
