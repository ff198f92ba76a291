package styles

import "github.com/opencode-ai/themekit/internal/theme"

// ButtonVariant is a button's visual treatment.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
	ButtonDanger    ButtonVariant = "danger"
)

// ButtonVariants lists the recognized button variants; the first is the default.
var ButtonVariants = []ButtonVariant{ButtonPrimary, ButtonSecondary, ButtonOutline, ButtonGhost, ButtonDanger}

// Normalize maps unrecognized variants to ButtonPrimary.
func (v ButtonVariant) Normalize() ButtonVariant {
	for _, known := range ButtonVariants {
		if v == known {
			return v
		}
	}
	return ButtonPrimary
}

// ButtonOptions configures a button style request.
type ButtonOptions struct {
	Variant ButtonVariant
	Size    Size
	State   State
}

var buttonPressed = pressFeedback{opacity: 0.8, scale: 0.95}

func buttonMetrics(th *theme.Theme, size Size) sizeMetrics {
	spacing := th.Spacing()
	typography := th.Typography()
	switch size {
	case SizeSmall:
		return sizeMetrics{spacing.SM, spacing.MD, 36, typography.BodySmall.FontSize}
	case SizeLarge:
		return sizeMetrics{spacing.LG, spacing.XL, 56, typography.H3.FontSize}
	default:
		return sizeMetrics{spacing.MD, spacing.LG, 48, typography.Body.FontSize}
	}
}

// Button resolves the style of a button.
func Button(th *theme.Theme, opts ButtonOptions) ResolvedStyle {
	colors := th.Colors
	rs := ResolvedStyle{
		BorderColor:  transparent,
		BorderRadius: th.Radius().LG,
		FontWeight:   "600",
		Shadow:       th.Shadows().Medium,
	}
	buttonMetrics(th, normalizeSize(opts.Size)).apply(&rs)

	variant := opts.Variant.Normalize()
	switch variant {
	case ButtonSecondary:
		rs.BackgroundColor = colors.Surface
		rs.BorderColor = colors.Border
		rs.BorderWidth = 1
		rs.TextColor = colors.TextPrimary
	case ButtonOutline:
		rs.BackgroundColor = transparent
		rs.BorderColor = colors.Primary
		rs.BorderWidth = 2
		rs.TextColor = colors.Primary
		rs.Shadow = noShadow
	case ButtonGhost:
		rs.BackgroundColor = transparent
		rs.TextColor = colors.Primary
		rs.Shadow = noShadow
	case ButtonDanger:
		rs.BackgroundColor = colors.Error
		rs.TextColor = colors.OnPrimary
	default:
		rs.BackgroundColor = colors.Primary
		rs.TextColor = colors.OnPrimary
	}

	rs.IndicatorColor = colors.Primary
	if variant == ButtonPrimary || variant == ButtonDanger {
		rs.IndicatorColor = colors.OnPrimary
	}
	rs.ShowIndicator = opts.State.Loading

	applyInteraction(&rs, opts.State, buttonPressed)
	return rs
}
