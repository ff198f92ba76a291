// Package theme resolves design tokens into a mode-aware theme.
package theme

import (
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/opencode-ai/themekit/internal/tokens"
)

// ErrConfiguration matches every *ConfigurationError.
var ErrConfiguration = errors.New("theme configuration error")

// ConfigurationError reports a required color role missing from both the
// dark overrides and the base palette.
type ConfigurationError struct {
	Tokens string
	Key    string
	Dark   bool
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return "theme configuration error: design tokens are required"
	}
	return fmt.Sprintf("theme configuration error: tokens %q define no %q color for %s mode",
		e.Tokens, e.Key, modeName(e.Dark))
}

// Is makes errors.Is(err, ErrConfiguration) succeed.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Theme is a resolved token set for one appearance mode.
type Theme struct {
	IsDarkMode  bool
	Colors      Colors
	Tokens      *tokens.DesignTokens
	Fingerprint uint64
}

// Resolve derives the theme for the given mode. It does not validate the
// tokens; callers load them through tokens.LoadFile or tokens.Preset.
func Resolve(t *tokens.DesignTokens, isDarkMode bool) (*Theme, error) {
	if t == nil {
		return nil, &ConfigurationError{Dark: isDarkMode}
	}

	resolved := make(map[string]string, len(colorRoles))
	for _, role := range colorRoles {
		value, err := resolveRole(t, role.key, isDarkMode)
		if err != nil {
			return nil, err
		}
		resolved[role.key] = value
	}

	th := &Theme{
		IsDarkMode: isDarkMode,
		Colors:     colorsFromMap(resolved),
		Tokens:     t,
	}
	th.Fingerprint = fingerprint(th)
	return th, nil
}

// MustResolve is Resolve for token sets known to be complete, such as the
// built-in presets. It panics on a configuration error.
func MustResolve(t *tokens.DesignTokens, isDarkMode bool) *Theme {
	th, err := Resolve(t, isDarkMode)
	if err != nil {
		panic(err)
	}
	return th
}

func resolveRole(t *tokens.DesignTokens, key string, dark bool) (string, error) {
	for current := key; ; {
		if value, ok := t.Palette.Lookup(current, dark); ok {
			return value, nil
		}
		fallback, ok := roleFallbacks[current]
		if !ok {
			if value, ok := t.NeutralColor(current, dark); ok {
				return value, nil
			}
			return "", &ConfigurationError{Tokens: t.Name, Key: current, Dark: dark}
		}
		current = fallback
	}
}

// Spacing returns the token spacing scale.
func (t *Theme) Spacing() tokens.SpacingScale { return t.Tokens.Spacing }

// Radius returns the token radius scale.
func (t *Theme) Radius() tokens.RadiusScale { return t.Tokens.Radius }

// Typography returns the token typography presets.
func (t *Theme) Typography() tokens.Typography { return t.Tokens.Typography }

// Shadows returns the token shadow presets.
func (t *Theme) Shadows() tokens.Shadows { return t.Tokens.Shadows }

// Mode returns "dark" or "light".
func (t *Theme) Mode() string { return modeName(t.IsDarkMode) }

// Equal reports structural equality: same mode, colors and token values.
func (t *Theme) Equal(other *Theme) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.IsDarkMode == other.IsDarkMode &&
		t.Colors == other.Colors &&
		t.Fingerprint == other.Fingerprint
}

func fingerprint(t *Theme) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%t|%v", t.IsDarkMode, t.Colors)
	if t.Tokens != nil {
		fmt.Fprintf(h, "|%v|%v|%v|%v", t.Tokens.Spacing, t.Tokens.Radius, t.Tokens.Typography, t.Tokens.Shadows)
	}
	return h.Sum64()
}

func modeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
