package tokens

// highContrastTokens favors visibility on low-contrast displays.
var highContrastTokens = DesignTokens{
	Name: "high-contrast",
	Palette: Palette{
		Colors: map[string]string{
			"primary":       "#0047AB",
			"accent":        "#B35C00",
			"background":    "#FFFFFF",
			"surface":       "#FFFFFF",
			"textPrimary":   "#000000",
			"textSecondary": "#1A1A1A",
			"textTertiary":  "#333333",
			"border":        "#000000",
			"success":       "#006B2D",
			"warning":       "#8A5A00",
			"error":         "#C00000",
			"info":          "#00509E",
			"shadow":        "#000000",
			"onPrimary":     "#FFFFFF",
		},
		Dark: map[string]string{
			"primary":       "#00A2FF",
			"accent":        "#FFD400",
			"background":    "#000000",
			"surface":       "#0A0A0A",
			"textPrimary":   "#FFFFFF",
			"textSecondary": "#C0C0C0",
			"textTertiary":  "#C0C0C0",
			"border":        "#FFFFFF",
			"success":       "#00FF5A",
			"warning":       "#FFB000",
			"error":         "#FF4040",
			"info":          "#66CCFF",
			"onPrimary":     "#000000",
		},
	},
	Spacing: standardSpacing,
	Radius:  standardRadius,
	Typography: Typography{
		H1:        TextStyle{FontSize: 34, FontWeight: "800", LineHeight: 42},
		H2:        TextStyle{FontSize: 26, FontWeight: "700", LineHeight: 34},
		H3:        TextStyle{FontSize: 22, FontWeight: "700", LineHeight: 30},
		Body:      TextStyle{FontSize: 18, FontWeight: "500", LineHeight: 26},
		BodySmall: TextStyle{FontSize: 16, FontWeight: "500", LineHeight: 22},
		Caption:   TextStyle{FontSize: 14, FontWeight: "500", LineHeight: 18},
	},
	Shadows: standardShadows("#000000"),
}
