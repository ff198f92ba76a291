// Package tokens defines design tokens: the palette, scales and presets every
// theme is derived from.
package tokens

import "maps"

// DesignTokens is the immutable token set a theme is resolved from.
// Values are shared by reference once loaded and must not be modified;
// use Clone to derive a variant.
type DesignTokens struct {
	Name       string       `yaml:"name" json:"name"`
	Extends    string       `yaml:"extends,omitempty" json:"extends,omitempty"`
	Palette    Palette      `yaml:"palette" json:"palette"`
	Neutral    Palette      `yaml:"neutral,omitempty" json:"neutral,omitempty"`
	Spacing    SpacingScale `yaml:"spacing" json:"spacing"`
	Radius     RadiusScale  `yaml:"radius" json:"radius"`
	Typography Typography   `yaml:"typography" json:"typography"`
	Shadows    Shadows      `yaml:"shadows" json:"shadows"`
	Source     string       `yaml:"-" json:"source,omitempty"` // file path or "builtin"
}

// Palette maps semantic color names to color values. Dark holds the
// overrides applied in dark mode.
type Palette struct {
	Colors map[string]string `yaml:",inline"`
	Dark   map[string]string `yaml:"dark,omitempty" json:"dark,omitempty"`
}

// Lookup returns the value for a semantic color, preferring the dark
// override when dark is set.
func (p Palette) Lookup(key string, dark bool) (string, bool) {
	if dark {
		if value, ok := p.Dark[key]; ok && value != "" {
			return value, true
		}
	}
	value, ok := p.Colors[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// NeutralColor returns the neutral default for a role. Sets without their own
// neutral section use the default preset's neutrals.
func (t *DesignTokens) NeutralColor(key string, dark bool) (string, bool) {
	if value, ok := t.Neutral.Lookup(key, dark); ok {
		return value, true
	}
	return NeutralDefault(key, dark)
}

// NeutralDefault returns the default preset's neutral color for a role.
func NeutralDefault(key string, dark bool) (string, bool) {
	return defaultTokens.Neutral.Lookup(key, dark)
}

// Step is a single named entry of an ordered scale.
type Step struct {
	Name  string
	Value float64
}

// SpacingScale is the spacing ramp in points.
type SpacingScale struct {
	XS  float64 `yaml:"xs" json:"xs"`
	SM  float64 `yaml:"sm" json:"sm"`
	MD  float64 `yaml:"md" json:"md"`
	LG  float64 `yaml:"lg" json:"lg"`
	XL  float64 `yaml:"xl" json:"xl"`
	XXL float64 `yaml:"xxl" json:"xxl"`
}

// Steps returns the scale from smallest to largest.
func (s SpacingScale) Steps() []Step {
	return []Step{
		{"xs", s.XS}, {"sm", s.SM}, {"md", s.MD},
		{"lg", s.LG}, {"xl", s.XL}, {"xxl", s.XXL},
	}
}

// RadiusScale is the corner radius ramp. Full is the pill/circle sentinel.
type RadiusScale struct {
	SM   float64 `yaml:"sm" json:"sm"`
	MD   float64 `yaml:"md" json:"md"`
	LG   float64 `yaml:"lg" json:"lg"`
	XL   float64 `yaml:"xl" json:"xl"`
	XXL  float64 `yaml:"xxl" json:"xxl"`
	Full float64 `yaml:"full" json:"full"`
}

// Steps returns the scale from smallest to largest.
func (r RadiusScale) Steps() []Step {
	return []Step{
		{"sm", r.SM}, {"md", r.MD}, {"lg", r.LG},
		{"xl", r.XL}, {"xxl", r.XXL}, {"full", r.Full},
	}
}

// TextStyle is a typography preset.
type TextStyle struct {
	FontSize   float64 `yaml:"fontSize" json:"fontSize"`
	FontWeight string  `yaml:"fontWeight" json:"fontWeight"`
	LineHeight float64 `yaml:"lineHeight" json:"lineHeight"`
}

// NamedTextStyle pairs a preset with its name.
type NamedTextStyle struct {
	Name  string
	Style TextStyle
}

// Typography holds the named text presets.
type Typography struct {
	H1        TextStyle `yaml:"h1" json:"h1"`
	H2        TextStyle `yaml:"h2" json:"h2"`
	H3        TextStyle `yaml:"h3" json:"h3"`
	Body      TextStyle `yaml:"body" json:"body"`
	BodySmall TextStyle `yaml:"bodySmall" json:"bodySmall"`
	Caption   TextStyle `yaml:"caption" json:"caption"`
}

// Presets lists the text presets in declaration order.
func (t Typography) Presets() []NamedTextStyle {
	return []NamedTextStyle{
		{"h1", t.H1}, {"h2", t.H2}, {"h3", t.H3},
		{"body", t.Body}, {"bodySmall", t.BodySmall}, {"caption", t.Caption},
	}
}

// Offset is a shadow displacement.
type Offset struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Shadow is a drop shadow preset.
type Shadow struct {
	Color      string  `yaml:"color,omitempty" json:"color,omitempty"`
	Offset     Offset  `yaml:"offset" json:"offset"`
	Opacity    float64 `yaml:"opacity" json:"opacity"`
	BlurRadius float64 `yaml:"blurRadius" json:"blurRadius"`
	Elevation  float64 `yaml:"elevation" json:"elevation"`
}

// NamedShadow pairs a shadow preset with its name.
type NamedShadow struct {
	Name   string
	Shadow Shadow
}

// Shadows holds the shadow presets, lightest first.
type Shadows struct {
	Small  Shadow `yaml:"small" json:"small"`
	Medium Shadow `yaml:"medium" json:"medium"`
	Large  Shadow `yaml:"large" json:"large"`
}

// Presets lists the shadows from lightest to heaviest.
func (s Shadows) Presets() []NamedShadow {
	return []NamedShadow{{"small", s.Small}, {"medium", s.Medium}, {"large", s.Large}}
}

// Clone returns a deep copy.
func (t *DesignTokens) Clone() *DesignTokens {
	if t == nil {
		return nil
	}
	clone := *t
	clone.Palette = Palette{
		Colors: maps.Clone(t.Palette.Colors),
		Dark:   maps.Clone(t.Palette.Dark),
	}
	clone.Neutral = Palette{
		Colors: maps.Clone(t.Neutral.Colors),
		Dark:   maps.Clone(t.Neutral.Dark),
	}
	return &clone
}
