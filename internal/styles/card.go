package styles

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tokens"
)

// CardVariant is a card's visual treatment.
type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardElevated CardVariant = "elevated"
	CardOutlined CardVariant = "outlined"
	CardFilled   CardVariant = "filled"
)

// CardVariants lists the recognized card variants; the first is the default.
var CardVariants = []CardVariant{CardDefault, CardElevated, CardOutlined, CardFilled}

// CardSizes lists the card padding sizes, smallest first.
var CardSizes = []Size{SizeNone, SizeSmall, SizeMedium, SizeLarge}

// Normalize maps unrecognized variants to CardDefault.
func (v CardVariant) Normalize() CardVariant {
	for _, known := range CardVariants {
		if v == known {
			return v
		}
	}
	return CardDefault
}

// CardOptions configures a card style request. Size selects the padding.
type CardOptions struct {
	Variant CardVariant
	Size    Size
	State   State
}

var cardPressed = pressFeedback{opacity: 1, scale: 0.98}

// filledTint matches a 0x10 alpha primary wash over the surface.
const filledTint = float64(0x10) / 0xFF

var noShadow = tokens.Shadow{}

// Card resolves the style of a card container.
func Card(th *theme.Theme, opts CardOptions) ResolvedStyle {
	colors := th.Colors
	rs := ResolvedStyle{
		BackgroundColor: colors.Surface,
		BorderColor:     transparent,
		BorderRadius:    th.Radius().LG,
		TextColor:       colors.TextPrimary,
	}

	padding := cardPadding(th, opts.Size)
	rs.PaddingVertical = padding
	rs.PaddingHorizontal = padding

	switch opts.Variant.Normalize() {
	case CardElevated:
		rs.Shadow = th.Shadows().Large
	case CardOutlined:
		rs.BorderColor = colors.Border
		rs.BorderWidth = 1
	case CardFilled:
		rs.BackgroundColor = Tint(colors.Surface, colors.Primary, filledTint)
	default:
		rs.Shadow = th.Shadows().Medium
	}

	applyInteraction(&rs, opts.State, cardPressed)
	return rs
}

func cardPadding(th *theme.Theme, size Size) float64 {
	spacing := th.Spacing()
	switch size {
	case SizeNone:
		return 0
	case SizeSmall:
		return spacing.SM
	case SizeLarge:
		return spacing.LG
	default:
		return spacing.MD
	}
}

// Tint blends over into base by amount (0..1). Colors that are not plain
// hex values leave base unchanged.
func Tint(base, over string, amount float64) string {
	baseColor, err := colorful.Hex(base)
	if err != nil {
		return base
	}
	overColor, err := colorful.Hex(over)
	if err != nil {
		return base
	}
	return baseColor.BlendRgb(overColor, amount).Clamped().Hex()
}
