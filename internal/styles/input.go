package styles

import "github.com/opencode-ai/themekit/internal/theme"

// InputVariant is a text input's visual treatment.
type InputVariant string

const (
	InputDefault    InputVariant = "default"
	InputErrorState InputVariant = "error-state"
)

// InputVariants lists the recognized input variants; the first is the default.
var InputVariants = []InputVariant{InputDefault, InputErrorState}

// Normalize maps unrecognized variants to InputDefault.
func (v InputVariant) Normalize() InputVariant {
	for _, known := range InputVariants {
		if v == known {
			return v
		}
	}
	return InputDefault
}

// InputOptions configures a text input style request.
type InputOptions struct {
	Variant InputVariant
	Size    Size
	State   State
}

func inputMetrics(th *theme.Theme, size Size) sizeMetrics {
	spacing := th.Spacing()
	typography := th.Typography()
	switch size {
	case SizeSmall:
		return sizeMetrics{spacing.XS, spacing.SM, 40, typography.BodySmall.FontSize}
	case SizeLarge:
		return sizeMetrics{spacing.MD, spacing.LG, 56, typography.H3.FontSize}
	default:
		return sizeMetrics{spacing.SM, spacing.MD, 48, typography.Body.FontSize}
	}
}

// Input resolves the style of a text input container.
//
// Border color precedence is error, then focus, then the theme border.
// Focus widens the border whether or not the input is in error.
func Input(th *theme.Theme, opts InputOptions) ResolvedStyle {
	colors := th.Colors
	rs := ResolvedStyle{
		BackgroundColor:  colors.Surface,
		BorderColor:      colors.Border,
		BorderWidth:      1,
		BorderRadius:     th.Radius().LG,
		TextColor:        colors.TextPrimary,
		FontWeight:       th.Typography().Body.FontWeight,
		Shadow:           th.Shadows().Small,
		LabelColor:       colors.TextSecondary,
		PlaceholderColor: colors.TextTertiary,
	}
	inputMetrics(th, normalizeSize(opts.Size)).apply(&rs)

	inError := opts.State.Error || opts.Variant.Normalize() == InputErrorState
	switch {
	case inError:
		rs.BorderColor = colors.Error
		rs.LabelColor = colors.Error
	case opts.State.Focused:
		rs.BorderColor = colors.Primary
		rs.LabelColor = colors.Primary
	}
	if opts.State.Focused {
		rs.BorderWidth = 2
	}

	applyInteraction(&rs, opts.State, pressFeedback{opacity: 1, scale: 1})
	return rs
}
