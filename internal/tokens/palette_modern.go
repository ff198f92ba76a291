package tokens

// modernTokens uses system blue on grouped gray backgrounds.
var modernTokens = DesignTokens{
	Name: "modern",
	Palette: Palette{
		Colors: map[string]string{
			"primary":       "#0A7AFF",
			"secondary":     "#34C759",
			"accent":        "#34C759",
			"background":    "#F2F2F7",
			"surface":       "#FFFFFF",
			"surfaceLight":  "#FFFFFF",
			"textPrimary":   "#171717",
			"textSecondary": "#6E6E73",
			"textTertiary":  "#8E8E93",
			"border":        "#D1D1D6",
			"success":       "#34C759",
			"warning":       "#FFCC00",
			"error":         "#FF3B30",
			"info":          "#007AFF",
			"shadow":        "#171717",
			"onPrimary":     "#FFFFFF",
		},
		Dark: map[string]string{
			"background":    "#1C1C1E",
			"surface":       "#171717",
			"surfaceLight":  "#171717",
			"textPrimary":   "#FFFFFF",
			"textSecondary": "#F2F2F7",
			"border":        "#8E8E93",
		},
	},
	Spacing: standardSpacing,
	Radius:  standardRadius,
	Typography: Typography{
		H1:        TextStyle{FontSize: 30, FontWeight: "700", LineHeight: 36},
		H2:        TextStyle{FontSize: 24, FontWeight: "700", LineHeight: 30},
		H3:        TextStyle{FontSize: 20, FontWeight: "600", LineHeight: 26},
		Body:      TextStyle{FontSize: 16, FontWeight: "400", LineHeight: 22},
		BodySmall: TextStyle{FontSize: 14, FontWeight: "300", LineHeight: 20},
		Caption:   TextStyle{FontSize: 12, FontWeight: "300", LineHeight: 16},
	},
	Shadows: Shadows{
		Small:  Shadow{Color: "#171717", Offset: Offset{Height: 1}, Opacity: 0.05, BlurRadius: 2, Elevation: 2},
		Medium: Shadow{Color: "#171717", Offset: Offset{Height: 2}, Opacity: 0.1, BlurRadius: 3, Elevation: 4},
		Large:  Shadow{Color: "#171717", Offset: Offset{Height: 4}, Opacity: 0.15, BlurRadius: 8, Elevation: 8},
	},
}
