package styles

import "github.com/opencode-ai/themekit/internal/theme"

// HeaderVariant is a screen header's visual treatment.
type HeaderVariant string

const (
	HeaderDefault HeaderVariant = "default"
	HeaderFlat    HeaderVariant = "flat"
)

// HeaderVariants lists the recognized header variants; the first is the default.
var HeaderVariants = []HeaderVariant{HeaderDefault, HeaderFlat}

// Normalize maps unrecognized variants to HeaderDefault.
func (v HeaderVariant) Normalize() HeaderVariant {
	for _, known := range HeaderVariants {
		if v == known {
			return v
		}
	}
	return HeaderDefault
}

// HeaderOptions configures a header style request.
type HeaderOptions struct {
	Variant HeaderVariant
}

const (
	headerHeight  = 60
	hairlineWidth = 0.5
)

// Header resolves the style of a screen header bar. The indicator color is
// used for the back control.
func Header(th *theme.Theme, opts HeaderOptions) ResolvedStyle {
	colors := th.Colors
	title := th.Typography().H3
	rs := ResolvedStyle{
		BackgroundColor:   colors.SurfaceLight,
		BorderColor:       colors.Border,
		BorderWidth:       hairlineWidth,
		TextColor:         colors.TextPrimary,
		FontSize:          title.FontSize,
		FontWeight:        "700",
		PaddingHorizontal: th.Spacing().MD,
		MinHeight:         headerHeight,
		Opacity:           1,
		Scale:             1,
		IndicatorColor:    colors.TextPrimary,
	}
	if opts.Variant.Normalize() == HeaderDefault {
		rs.Shadow = th.Shadows().Small
	}
	return rs
}
