package tokens

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ValidationError lists every invariant a token set violates.
type ValidationError struct {
	Name     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid tokens %q: %s", e.Name, strings.Join(e.Problems, "; "))
}

var (
	alphaHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)
	rgbPattern      = regexp.MustCompile(`^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(,\s*(0|1|0?\.\d+|1\.0+)\s*)?\)$`)
)

// ValidColor reports whether value is a color the token store accepts:
// #RGB, #RRGGBB, #RRGGBBAA, rgb()/rgba() or "transparent".
func ValidColor(value string) bool {
	value = strings.TrimSpace(value)
	switch {
	case value == "transparent":
		return true
	case alphaHexPattern.MatchString(value):
		_, err := colorful.Hex(value[:7])
		return err == nil
	case strings.HasPrefix(value, "#"):
		if len(value) != 4 && len(value) != 7 {
			return false
		}
		_, err := colorful.Hex(value)
		return err == nil
	default:
		return rgbPattern.MatchString(value)
	}
}

// Validate checks the token invariants and returns a *ValidationError
// describing all violations, or nil.
func (t *DesignTokens) Validate() error {
	if t == nil {
		return &ValidationError{Problems: []string{"tokens are required"}}
	}

	var problems []string
	if len(t.Palette.Colors) == 0 {
		problems = append(problems, "palette is empty")
	}
	problems = append(problems, checkColors("palette", t.Palette.Colors)...)
	problems = append(problems, checkColors("palette.dark", t.Palette.Dark)...)
	problems = append(problems, checkColors("neutral", t.Neutral.Colors)...)
	problems = append(problems, checkColors("neutral.dark", t.Neutral.Dark)...)
	problems = append(problems, checkIncreasing("spacing", t.Spacing.Steps())...)
	problems = append(problems, checkIncreasing("radius", t.Radius.Steps())...)

	presetsInOrder := t.Typography.Presets()
	for i, preset := range presetsInOrder {
		style := preset.Style
		// Headings and body text shrink in declaration order.
		if i > 0 && style.FontSize >= presetsInOrder[i-1].Style.FontSize {
			problems = append(problems, fmt.Sprintf("typography.%s: fontSize %g must be smaller than typography.%s", preset.Name, style.FontSize, presetsInOrder[i-1].Name))
		}
		if style.FontWeight != "" {
			if _, ok := ParseFontWeight(style.FontWeight); !ok {
				problems = append(problems, fmt.Sprintf("typography.%s: fontWeight %q must be normal, bold or a multiple of 100 from 100 to 900", preset.Name, style.FontWeight))
			}
		}
		if style.FontSize <= 0 {
			problems = append(problems, fmt.Sprintf("typography.%s: fontSize must be positive", preset.Name))
			continue
		}
		if style.LineHeight <= style.FontSize {
			problems = append(problems, fmt.Sprintf("typography.%s: lineHeight %g must exceed fontSize %g", preset.Name, style.LineHeight, style.FontSize))
		}
	}

	shadows := t.Shadows.Presets()
	for i, shadow := range shadows {
		if shadow.Shadow.Color != "" && !ValidColor(shadow.Shadow.Color) {
			problems = append(problems, fmt.Sprintf("shadows.%s: invalid color %q", shadow.Name, shadow.Shadow.Color))
		}
		if i == 0 {
			continue
		}
		prev, cur := shadows[i-1].Shadow, shadow.Shadow
		if cur.Opacity <= prev.Opacity || cur.BlurRadius <= prev.BlurRadius || cur.Elevation <= prev.Elevation {
			problems = append(problems, fmt.Sprintf("shadows.%s must be more intense than shadows.%s", shadow.Name, shadows[i-1].Name))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Name: t.Name, Problems: problems}
}

// ParseFontWeight converts a font weight to its numeric value. It accepts
// "normal", "bold" and the numeric weights 100 through 900.
func ParseFontWeight(weight string) (int, bool) {
	switch weight = strings.ToLower(strings.TrimSpace(weight)); weight {
	case "normal":
		return 400, true
	case "bold":
		return 700, true
	}
	n, err := strconv.Atoi(weight)
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return 0, false
	}
	return n, true
}

func checkColors(section string, colors map[string]string) []string {
	keys := make([]string, 0, len(colors))
	for key := range colors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if !ValidColor(colors[key]) {
			problems = append(problems, fmt.Sprintf("%s.%s: invalid color %q", section, key, colors[key]))
		}
	}
	return problems
}

func checkIncreasing(section string, steps []Step) []string {
	var problems []string
	for i, step := range steps {
		if i == 0 {
			if step.Value < 0 {
				problems = append(problems, fmt.Sprintf("%s.%s must not be negative", section, step.Name))
			}
			continue
		}
		if step.Value <= steps[i-1].Value {
			problems = append(problems, fmt.Sprintf("%s.%s (%g) must be greater than %s.%s (%g)",
				section, step.Name, step.Value, section, steps[i-1].Name, steps[i-1].Value))
		}
	}
	return problems
}
