package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themekit/internal/tokens"
)

func scenarioTokens() *tokens.DesignTokens {
	base, _ := tokens.Preset("modern")
	base.Palette = tokens.Palette{
		Colors: map[string]string{
			"primary":    "#0A7AFF",
			"error":      "#FF3B30",
			"background": "#F2F2F7",
		},
		Dark: map[string]string{
			"background": "#1C1C1E",
		},
	}
	return base
}

func TestResolveLightToDarkScenario(t *testing.T) {
	tk := scenarioTokens()

	light, err := Resolve(tk, false)
	require.NoError(t, err)
	assert.Equal(t, "#F2F2F7", light.Colors.Background)
	assert.Equal(t, "#1F2937", light.Colors.TextPrimary)
	assert.False(t, light.IsDarkMode)

	dark, err := Resolve(tk, true)
	require.NoError(t, err)
	assert.Equal(t, "#1C1C1E", dark.Colors.Background)
	assert.Equal(t, "#F9FAFB", dark.Colors.TextPrimary)
	assert.True(t, dark.IsDarkMode)
	assert.Equal(t, "dark", dark.Mode())
}

func TestResolveDeterministic(t *testing.T) {
	for _, name := range tokens.PresetNames() {
		tk, _ := tokens.Preset(name)
		for _, dark := range []bool{false, true} {
			first, err := Resolve(tk, dark)
			require.NoError(t, err)
			second, err := Resolve(tk, dark)
			require.NoError(t, err)

			assert.NotSame(t, first, second)
			assert.Equal(t, first, second, "%s dark=%t", name, dark)
			assert.True(t, first.Equal(second))
		}
	}
}

func TestResolveDarkOverridePrecedence(t *testing.T) {
	for _, name := range tokens.PresetNames() {
		tk, _ := tokens.Preset(name)
		dark := MustResolve(tk, true)
		colors := dark.Colors.Map()

		for key, value := range tk.Palette.Dark {
			if got, ok := colors[key]; ok {
				assert.Equal(t, value, got, "%s: dark override %s", name, key)
			}
		}
		for key, value := range tk.Palette.Colors {
			if _, overridden := tk.Palette.Dark[key]; overridden {
				continue
			}
			if got, ok := colors[key]; ok {
				assert.Equal(t, value, got, "%s: base fallback %s", name, key)
			}
		}
	}
}

func TestResolveLightIgnoresDarkOverrides(t *testing.T) {
	tk, _ := tokens.Preset("default")
	light := MustResolve(tk, false)
	for key, value := range tk.Palette.Colors {
		if got, ok := light.Colors.Get(key); ok {
			assert.Equal(t, value, got, key)
		}
	}
}

func TestResolveLightDarkDistinct(t *testing.T) {
	for _, name := range tokens.PresetNames() {
		tk, _ := tokens.Preset(name)
		if tk.Palette.Dark["background"] == tk.Palette.Colors["background"] {
			continue
		}
		light := MustResolve(tk, false)
		dark := MustResolve(tk, true)
		assert.NotEqual(t, light.Colors.Background, dark.Colors.Background, name)
		assert.False(t, light.Equal(dark))
		assert.NotEqual(t, light.Fingerprint, dark.Fingerprint)
	}
}

func TestResolveFallbackChain(t *testing.T) {
	th := MustResolve(scenarioTokens(), true)

	assert.Equal(t, "#1C1C1E", th.Colors.Surface, "surface falls back to background")
	assert.Equal(t, "#1C1C1E", th.Colors.SurfaceLight)
	assert.Equal(t, "#171717", th.Colors.TextSecondary)
	assert.Equal(t, "#171717", th.Colors.TextTertiary)
	assert.Equal(t, "#171717", th.Colors.Border)
	assert.Equal(t, "#0A7AFF", th.Colors.Secondary)
	assert.Equal(t, "#0A7AFF", th.Colors.Success)
	assert.Equal(t, "#171717", th.Colors.Overlay)
	assert.Equal(t, "#1C1C1E", th.Colors.OnPrimary)

	for _, key := range RoleNames() {
		value, ok := th.Colors.Get(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, value, key)
	}
}

func TestResolveMissingRequiredRole(t *testing.T) {
	for _, key := range RequiredRoles() {
		t.Run(key, func(t *testing.T) {
			tk := scenarioTokens()
			delete(tk.Palette.Colors, key)
			delete(tk.Palette.Dark, key)

			_, err := Resolve(tk, false)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, key, cerr.Key)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestResolveRequiredRoleOnlyInDark(t *testing.T) {
	tk := scenarioTokens()
	delete(tk.Palette.Colors, "background")

	_, err := Resolve(tk, false)
	require.ErrorIs(t, err, ErrConfiguration)

	dark, err := Resolve(tk, true)
	require.NoError(t, err)
	assert.Equal(t, "#1C1C1E", dark.Colors.Background)
}

func TestResolveNilTokens(t *testing.T) {
	_, err := Resolve(nil, false)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestRequiredRoles(t *testing.T) {
	assert.ElementsMatch(t, []string{"background", "primary", "error"}, RequiredRoles())
}

func TestTextPrimaryFallsBackToNeutral(t *testing.T) {
	tk := scenarioTokens()
	tk.Neutral = tokens.Palette{}

	light := MustResolve(tk, false)
	want, ok := tokens.NeutralDefault("textPrimary", false)
	require.True(t, ok)
	assert.Equal(t, want, light.Colors.TextPrimary)
	assert.Equal(t, want, light.Colors.TextTertiary)
	assert.Equal(t, want, light.Colors.Shadow)

	dark := MustResolve(tk, true)
	want, ok = tokens.NeutralDefault("textPrimary", true)
	require.True(t, ok)
	assert.Equal(t, want, dark.Colors.TextPrimary)
	assert.NotEqual(t, light.Colors.TextPrimary, dark.Colors.TextPrimary)
}

func TestTokenNeutralsOverrideDefault(t *testing.T) {
	tk := scenarioTokens()
	tk.Neutral = tokens.Palette{
		Colors: map[string]string{"textPrimary": "#171717"},
		Dark:   map[string]string{"textPrimary": "#FFFFFF"},
	}
	assert.Equal(t, "#171717", MustResolve(tk, false).Colors.TextPrimary)
	assert.Equal(t, "#FFFFFF", MustResolve(tk, true).Colors.TextPrimary)

	tk.Palette.Colors["textPrimary"] = "#222222"
	assert.Equal(t, "#222222", MustResolve(tk, false).Colors.TextPrimary)
}

func TestThemePassThroughScales(t *testing.T) {
	tk, _ := tokens.Preset("default")
	th := MustResolve(tk, false)

	assert.Same(t, tk, th.Tokens)
	assert.Equal(t, tk.Spacing, th.Spacing())
	assert.Equal(t, tk.Radius, th.Radius())
	assert.Equal(t, tk.Typography, th.Typography())
	assert.Equal(t, tk.Shadows, th.Shadows())
}

func TestColorsGetUnknown(t *testing.T) {
	_, ok := Colors{}.Get("chartreuse")
	assert.False(t, ok)
}
