// Package catalog maps screen identifiers of the book flow to localized
// titles. It is the rendering lookup the coordinator never sees.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/constants"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/coordinator"
)

//go:embed locales/*.toml
var localeFS embed.FS

// ErrUnsupportedLocale is returned when a locale string is not a valid
// BCP 47 tag.
var ErrUnsupportedLocale = errors.New("unsupported locale")

const pathSeparator = " › "

var screens = []string{
	constants.ScreenOrangeBook,
	constants.ScreenRedBook,
	constants.ScreenGreenBook,
	constants.ScreenBlueBook,
}

// Screens returns the identifiers of every screen with a title, root first.
func Screens() []string {
	out := make([]string, len(screens))
	copy(out, screens)
	return out
}

// Catalog resolves screen titles for one locale.
type Catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New loads the embedded message files and selects the closest supported
// match for locale. An empty locale selects English.
func New(locale string) (*Catalog, error) {
	if locale == "" {
		locale = constants.DefaultLocale
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, locale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+e.Name()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", e.Name(), err)
		}
	}

	supported := bundle.LanguageTags()
	_, idx, _ := language.NewMatcher(supported).Match(requested)
	tag := supported[idx]

	return &Catalog{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Locale returns the locale the catalog resolved to.
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

// Title returns the localized title of screen, or screen itself when it has
// no translation.
func (c *Catalog) Title(screen string) string {
	title, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: screen})
	if err != nil || title == "" {
		return screen
	}
	return title
}

// Describe renders a coordinator state as a breadcrumb starting at root.
func (c *Catalog) Describe(root string, state coordinator.State[string]) string {
	parts := make([]string, 0, len(state.Path)+1)
	parts = append(parts, c.Title(root))
	for _, s := range state.Path {
		parts = append(parts, c.Title(s))
	}
	out := strings.Join(parts, pathSeparator)

	if state.HasModal {
		suffix, err := c.localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    "modal_suffix",
			TemplateData: map[string]string{"Title": c.Title(state.Modal)},
		})
		if err != nil {
			suffix = "(modal: " + c.Title(state.Modal) + ")"
		}
		out += " " + suffix
	}
	return out
}
