package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// localeFile is the on-disk shape of a catalog
type localeFile struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Translator resolves message keys for the languages found in the catalogs.
type Translator struct {
	catalog   *catalog.Builder
	matcher   language.Matcher
	supported []language.Tag
	fallback  language.Tag
}

// New builds a Translator from the embedded catalogs.
func New(defaultLang string) (*Translator, error) {
	sub, err := fs.Sub(localesFS, localesDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadLocales, err)
	}
	return Load(sub, defaultLang)
}

// Load builds a Translator from every .yaml file at the root of fsys.
// defaultLang is matched when a request names no supported language; it
// must be one of the catalog languages.
func Load(fsys fs.FS, defaultLang string) (*Translator, error) {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	fallback, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgInvalidLanguage, defaultLang, err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadLocales, err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	var tags []language.Tag
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), localeExt) {
			continue
		}
		tag, err := loadLocale(fsys, entry.Name(), builder)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil, errors.New(ErrMsgNoLocales)
	}

	// The matcher prefers the first tag when nothing else fits.
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i] == fallback && tags[j] != fallback
	})
	if tags[0] != fallback {
		return nil, fmt.Errorf("%s %q: no catalog", ErrMsgInvalidLanguage, defaultLang)
	}

	return &Translator{
		catalog:   builder,
		matcher:   language.NewMatcher(tags),
		supported: tags,
		fallback:  fallback,
	}, nil
}

func loadLocale(fsys fs.FS, name string, builder *catalog.Builder) (language.Tag, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return language.Und, fmt.Errorf("%s %s: %w", ErrMsgReadLocales, name, err)
	}

	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return language.Und, fmt.Errorf("%s %s: %w", ErrMsgParseLocale, name, err)
	}

	lang := file.Language
	if lang == "" {
		lang = strings.TrimSuffix(path.Base(name), localeExt)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("%s %q: %w", ErrMsgInvalidLanguage, lang, err)
	}

	for key, msg := range file.Messages {
		if err := builder.SetString(tag, key, msg); err != nil {
			return language.Und, fmt.Errorf("%s %s/%s: %w", ErrMsgSetMessage, tag, key, err)
		}
	}
	return tag, nil
}

// Match picks the best supported language for an Accept-Language header
// value. An empty or unparsable header yields the default language.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	_, index := language.MatchStrings(t.matcher, acceptLanguage)
	return t.supported[index]
}

// Languages returns the supported languages, default first.
func (t *Translator) Languages() []language.Tag {
	out := make([]language.Tag, len(t.supported))
	copy(out, t.supported)
	return out
}

// Default returns the default language
func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Printer returns a printer bound to tag
func (t *Translator) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(t.catalog))
}

// Text translates key for tag, formatting args into the message.
func (t *Translator) Text(tag language.Tag, key string, args ...interface{}) string {
	return t.Printer(tag).Sprintf(key, args...)
}

// DefaultLabel returns the badge text shown when no label is configured.
func (t *Translator) DefaultLabel() string {
	return t.Text(t.fallback, MsgDefaultLabel)
}
