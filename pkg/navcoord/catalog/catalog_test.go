package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/navcoord/pkg/navcoord/constants"
	"github.com/BrandonKowalski/navcoord/pkg/navcoord/coordinator"
)

func TestNew_SelectsLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"fr", language.French},
		{"fr-CA", language.French},
		{"de", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			c, err := New(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want.String(), c.Locale().String())
		})
	}
}

func TestNew_MalformedLocale(t *testing.T) {
	_, err := New("not a locale!")
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestTitle(t *testing.T) {
	en, err := New("en")
	require.NoError(t, err)
	fr, err := New("fr")
	require.NoError(t, err)

	assert.Equal(t, "📕 Red Book", en.Title(constants.ScreenRedBook))
	assert.Equal(t, "📕 Livre rouge", fr.Title(constants.ScreenRedBook))
	assert.Equal(t, "purple_book", en.Title("purple_book"), "unknown screens fall back to their id")
}

func TestScreens_EveryScreenHasATitle(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	for _, s := range Screens() {
		assert.NotEqual(t, s, c.Title(s), "screen %s has no title", s)
	}
}

func TestDescribe(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	got := c.Describe(constants.ScreenOrangeBook, coordinator.State[string]{
		Path:     []string{constants.ScreenRedBook, constants.ScreenGreenBook},
		Modal:    constants.ScreenBlueBook,
		HasModal: true,
	})

	assert.Equal(t, "📙 Orange Book › 📕 Red Book › 📗 Green Book (modal: 📘 Blue Book)", got)
}

func TestDescribe_RootOnly(t *testing.T) {
	c, err := New("fr")
	require.NoError(t, err)

	got := c.Describe(constants.ScreenOrangeBook, coordinator.State[string]{})
	assert.Equal(t, "📙 Livre orange", got)
}
