// Package i18n provides the localized fixed strings of the UI.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// Message keys used across the UI.
const (
	TitleDefault        = "title.default"
	TitleCommands       = "title.commands"
	TitleBasics         = "title.basics"
	TitleTips           = "title.tips"
	TitleNotFound       = "title.not_found"
	ActionBack          = "action.back"
	ActionSearch        = "action.search"
	ActionReset         = "action.reset"
	ActionInfo          = "action.info"
	ActionBookmark      = "action.bookmark"
	ActionBookmarked    = "action.bookmarked"
	SearchPlaceholder   = "search.placeholder"
	ListEmpty           = "list.empty"
	ListBookmarks       = "list.bookmarks"
	InfoTitle           = "info.title"
	InfoBody            = "info.body"
	MessageBookmarkAdd  = "message.bookmark_added"
	MessageBookmarkDrop = "message.bookmark_removed"
	MessageCopied       = "message.copied"
	MessageInstalled    = "message.installed"
)

//go:embed locales/*.yaml
var localeFS embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Localizer formats messages for one language.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the best supported match of locale.
// An empty or unparsable locale falls back to English.
func New(locale string) (*Localizer, error) {
	builder, supported, err := loadCatalog(localeFS)
	if err != nil {
		return nil, err
	}

	tag := language.English
	if wanted, err := language.Parse(normalizeLocale(locale)); err == nil {
		_, idx, confidence := language.NewMatcher(supported).Match(wanted)
		if confidence != language.No {
			tag = supported[idx]
		}
	}

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// MustNew is New for the embedded catalogs, which are known to parse.
func MustNew(locale string) *Localizer {
	l, err := New(locale)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the language the Localizer resolved to.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T formats the message for key.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// DetectLocale reads the locale from the usual environment variables.
func DetectLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}

// normalizeLocale turns POSIX locales ("de_DE.UTF-8") into BCP 47 ("de-DE").
func normalizeLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func loadCatalog(fsys fs.FS) (*catalog.Builder, []language.Tag, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("glob locales: %w", err)
	}
	sort.Strings(paths)

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	// English first so the matcher prefers it on ties.
	supported := []language.Tag{language.English}

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", path, err)
		}

		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: locale %q: %w", path, file.Locale, err)
		}

		for key, msg := range file.Messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, nil, fmt.Errorf("%s: %s: %w", path, key, err)
			}
		}

		if tag != language.English {
			supported = append(supported, tag)
		}
	}

	return builder, supported, nil
}
