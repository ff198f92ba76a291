// Package styles maps a theme plus component options to concrete styles.
//
// Every mapper is a pure function of its inputs. Unrecognized variants and
// sizes are normalized to the component's default instead of failing.
package styles

import "github.com/opencode-ai/themekit/internal/tokens"

// ResolvedStyle is the concrete style handed to the rendering layer.
type ResolvedStyle struct {
	BackgroundColor   string        `json:"backgroundColor"`
	BorderColor       string        `json:"borderColor"`
	BorderWidth       float64       `json:"borderWidth"`
	BorderRadius      float64       `json:"borderRadius"`
	TextColor         string        `json:"textColor"`
	FontSize          float64       `json:"fontSize,omitempty"`
	FontWeight        string        `json:"fontWeight,omitempty"`
	PaddingVertical   float64       `json:"paddingVertical"`
	PaddingHorizontal float64       `json:"paddingHorizontal"`
	MinHeight         float64       `json:"minHeight"`
	Opacity           float64       `json:"opacity"`
	Scale             float64       `json:"scale"`
	Shadow            tokens.Shadow `json:"shadow"`
	LabelColor        string        `json:"labelColor,omitempty"`
	PlaceholderColor  string        `json:"placeholderColor,omitempty"`
	IndicatorColor    string        `json:"indicatorColor,omitempty"`
	ShowIndicator     bool          `json:"showIndicator,omitempty"`
}

// State carries the interaction flags of a component instance.
type State struct {
	Disabled bool `json:"disabled,omitempty"`
	Loading  bool `json:"loading,omitempty"`
	Focused  bool `json:"focused,omitempty"`
	Error    bool `json:"error,omitempty"`
	Pressed  bool `json:"pressed,omitempty"`
}

// Size selects a component's dimensions.
type Size string

const (
	SizeNone   Size = "none"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Sizes lists the sizes shared by buttons and inputs, smallest first.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

func normalizeSize(size Size) Size {
	switch size {
	case SizeSmall, SizeMedium, SizeLarge:
		return size
	default:
		return SizeMedium
	}
}

const (
	disabledOpacity = 0.5
	transparent     = "transparent"
)

// pressFeedback is the opacity and scale a component shows while pressed.
type pressFeedback struct {
	opacity float64
	scale   float64
}

// applyInteraction applies pressed feedback and the disabled override.
// Disabled wins over every other opacity source.
func applyInteraction(rs *ResolvedStyle, state State, pressed pressFeedback) {
	rs.Opacity = 1
	rs.Scale = 1
	if state.Pressed && !state.Disabled {
		rs.Opacity = pressed.opacity
		rs.Scale = pressed.scale
	}
	if state.Disabled {
		rs.Opacity = disabledOpacity
	}
}

// sizeMetrics is the box and type size of a sized control.
type sizeMetrics struct {
	paddingVertical   float64
	paddingHorizontal float64
	minHeight         float64
	fontSize          float64
}

func (m sizeMetrics) apply(rs *ResolvedStyle) {
	rs.PaddingVertical = m.paddingVertical
	rs.PaddingHorizontal = m.paddingHorizontal
	rs.MinHeight = m.minHeight
	rs.FontSize = m.fontSize
}
