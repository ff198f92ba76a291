package tokens

// defaultTokens is the baseline indigo token set.
var defaultTokens = DesignTokens{
	Name: "default",
	Palette: Palette{
		Colors: map[string]string{
			"primary":        "#6366F1",
			"primaryLight":   "#818CF8",
			"primaryDark":    "#4F46E5",
			"secondary":      "#EC4899",
			"secondaryLight": "#F472B6",
			"secondaryDark":  "#DB2777",
			"accent":         "#10B981",
			"accentLight":    "#34D399",
			"accentDark":     "#059669",
			"background":     "#FFFFFF",
			"surface":        "#F8FAFC",
			"surfaceLight":   "#FFFFFF",
			"textPrimary":    "#1F2937",
			"textSecondary":  "#6B7280",
			"textTertiary":   "#9CA3AF",
			"success":        "#10B981",
			"warning":        "#F59E0B",
			"error":          "#EF4444",
			"info":           "#3B82F6",
			"border":         "#E5E7EB",
			"shadow":         "#000000",
			"overlay":        "rgba(0, 0, 0, 0.5)",
			"onPrimary":      "#FFFFFF",
		},
		Dark: map[string]string{
			"background":    "#111827",
			"surface":       "#1F2937",
			"surfaceLight":  "#374151",
			"textPrimary":   "#F9FAFB",
			"textSecondary": "#D1D5DB",
			"textTertiary":  "#9CA3AF",
			"border":        "#374151",
		},
	},
	Neutral: Palette{
		Colors: map[string]string{"textPrimary": "#1F2937"},
		Dark:   map[string]string{"textPrimary": "#F9FAFB"},
	},
	Spacing: standardSpacing,
	Radius:  standardRadius,
	Typography: Typography{
		H1:        TextStyle{FontSize: 32, FontWeight: "700", LineHeight: 40},
		H2:        TextStyle{FontSize: 24, FontWeight: "600", LineHeight: 32},
		H3:        TextStyle{FontSize: 20, FontWeight: "600", LineHeight: 28},
		Body:      TextStyle{FontSize: 16, FontWeight: "400", LineHeight: 24},
		BodySmall: TextStyle{FontSize: 14, FontWeight: "400", LineHeight: 20},
		Caption:   TextStyle{FontSize: 12, FontWeight: "400", LineHeight: 16},
	},
	Shadows: standardShadows("#000000"),
}
