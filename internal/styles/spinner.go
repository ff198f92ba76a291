package styles

import "github.com/opencode-ai/themekit/internal/theme"

// SpinnerOptions configures a loading indicator style request.
// Only SizeSmall and SizeLarge are distinct; anything else is large.
type SpinnerOptions struct {
	Size Size
}

// Spinner resolves the style of a loading indicator.
func Spinner(th *theme.Theme, opts SpinnerOptions) ResolvedStyle {
	colors := th.Colors
	diameter := 40.0
	if opts.Size == SizeSmall {
		diameter = 20
	}

	indicator := colors.Primary
	if th.IsDarkMode {
		indicator = colors.TextPrimary
	}

	padding := th.Spacing().MD
	return ResolvedStyle{
		BackgroundColor:   transparent,
		BorderColor:       transparent,
		BorderRadius:      th.Radius().Full,
		TextColor:         colors.TextSecondary,
		PaddingVertical:   padding,
		PaddingHorizontal: padding,
		MinHeight:         diameter,
		Opacity:           1,
		Scale:             1,
		IndicatorColor:    indicator,
		ShowIndicator:     true,
	}
}
