package tokens

import "sort"

// presets lists the built-in token sets by name.
var presets = map[string]*DesignTokens{
	"default":       &defaultTokens,
	"modern":        &modernTokens,
	"high-contrast": &highContrastTokens,
}

// DefaultPresetName is the preset used when nothing else is configured.
const DefaultPresetName = "default"

// Preset returns a copy of the named built-in token set.
func Preset(name string) (*DesignTokens, bool) {
	t, ok := presets[name]
	if !ok {
		return nil, false
	}
	clone := t.Clone()
	clone.Source = "builtin"
	return clone, true
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns copies of every built-in preset, sorted by name.
func Builtins() []*DesignTokens {
	names := PresetNames()
	out := make([]*DesignTokens, 0, len(names))
	for _, name := range names {
		t, _ := Preset(name)
		out = append(out, t)
	}
	return out
}

var standardSpacing = SpacingScale{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48}

var standardRadius = RadiusScale{SM: 4, MD: 8, LG: 12, XL: 16, XXL: 24, Full: 9999}

func standardShadows(color string) Shadows {
	return Shadows{
		Small:  Shadow{Color: color, Offset: Offset{Height: 1}, Opacity: 0.05, BlurRadius: 2, Elevation: 2},
		Medium: Shadow{Color: color, Offset: Offset{Height: 2}, Opacity: 0.1, BlurRadius: 4, Elevation: 4},
		Large:  Shadow{Color: color, Offset: Offset{Height: 4}, Opacity: 0.15, BlurRadius: 8, Elevation: 8},
	}
}
