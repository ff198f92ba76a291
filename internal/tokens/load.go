package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a token set from a YAML, JSON or TOML file, applies its
// extends preset and validates the result.
func LoadFile(path string) (*DesignTokens, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("tokens path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tokens %s: %w", path, err)
	}

	t, err := Parse(data, formatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parse tokens %s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = nameFromPath(path)
	}
	t.Source = path

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Format is a token file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Parse decodes a token document and applies its extends preset. Unknown
// fields are rejected. The result is not validated.
func Parse(data []byte, format Format) (*DesignTokens, error) {
	if format == FormatTOML {
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		normalized, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("normalize toml: %w", err)
		}
		data = normalized
	}

	var t DesignTokens
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("tokens document is empty")
		}
		return nil, err
	}

	t.Name = strings.TrimSpace(t.Name)
	t.Extends = strings.TrimSpace(t.Extends)
	if t.Extends == "" {
		return &t, nil
	}

	base, ok := Preset(t.Extends)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q in extends", t.Extends)
	}
	merged := Merge(base, &t)
	merged.Name = t.Name
	return merged, nil
}

// Merge layers overlay on top of base. Palette entries are merged key by
// key; zero-valued scale entries, text styles and shadows inherit from base.
func Merge(base, overlay *DesignTokens) *DesignTokens {
	out := base.Clone()
	if overlay == nil {
		return out
	}

	if overlay.Name != "" {
		out.Name = overlay.Name
	}
	out.Extends = overlay.Extends
	out.Source = overlay.Source

	if out.Palette.Colors == nil {
		out.Palette.Colors = make(map[string]string, len(overlay.Palette.Colors))
	}
	maps.Copy(out.Palette.Colors, overlay.Palette.Colors)
	if out.Palette.Dark == nil {
		out.Palette.Dark = make(map[string]string, len(overlay.Palette.Dark))
	}
	maps.Copy(out.Palette.Dark, overlay.Palette.Dark)
	out.Neutral.Colors = mergeColors(out.Neutral.Colors, overlay.Neutral.Colors)
	out.Neutral.Dark = mergeColors(out.Neutral.Dark, overlay.Neutral.Dark)

	mergeFloat(&out.Spacing.XS, overlay.Spacing.XS)
	mergeFloat(&out.Spacing.SM, overlay.Spacing.SM)
	mergeFloat(&out.Spacing.MD, overlay.Spacing.MD)
	mergeFloat(&out.Spacing.LG, overlay.Spacing.LG)
	mergeFloat(&out.Spacing.XL, overlay.Spacing.XL)
	mergeFloat(&out.Spacing.XXL, overlay.Spacing.XXL)

	mergeFloat(&out.Radius.SM, overlay.Radius.SM)
	mergeFloat(&out.Radius.MD, overlay.Radius.MD)
	mergeFloat(&out.Radius.LG, overlay.Radius.LG)
	mergeFloat(&out.Radius.XL, overlay.Radius.XL)
	mergeFloat(&out.Radius.XXL, overlay.Radius.XXL)
	mergeFloat(&out.Radius.Full, overlay.Radius.Full)

	mergeText(&out.Typography.H1, overlay.Typography.H1)
	mergeText(&out.Typography.H2, overlay.Typography.H2)
	mergeText(&out.Typography.H3, overlay.Typography.H3)
	mergeText(&out.Typography.Body, overlay.Typography.Body)
	mergeText(&out.Typography.BodySmall, overlay.Typography.BodySmall)
	mergeText(&out.Typography.Caption, overlay.Typography.Caption)

	mergeShadow(&out.Shadows.Small, overlay.Shadows.Small)
	mergeShadow(&out.Shadows.Medium, overlay.Shadows.Medium)
	mergeShadow(&out.Shadows.Large, overlay.Shadows.Large)

	return out
}

func mergeColors(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

func mergeFloat(dst *float64, value float64) {
	if value != 0 {
		*dst = value
	}
}

func mergeText(dst *TextStyle, value TextStyle) {
	if value != (TextStyle{}) {
		*dst = value
	}
}

func mergeShadow(dst *Shadow, value Shadow) {
	if value != (Shadow{}) {
		*dst = value
	}
}

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSuffix(base, ".tokens")
}
