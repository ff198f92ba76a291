package tokens

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresetsValidate(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			preset, ok := Preset(name)
			require.True(t, ok)
			require.NoError(t, preset.Validate())
			assert.Equal(t, "builtin", preset.Source)
		})
	}
}

func TestPresetReturnsIndependentCopy(t *testing.T) {
	first, ok := Preset("default")
	require.True(t, ok)
	first.Palette.Colors["primary"] = "#000000"
	first.Palette.Dark["background"] = "#000000"

	second, ok := Preset("default")
	require.True(t, ok)
	assert.Equal(t, "#6366F1", second.Palette.Colors["primary"])
	assert.Equal(t, "#111827", second.Palette.Dark["background"])
}

func TestPresetUnknown(t *testing.T) {
	_, ok := Preset("neon")
	assert.False(t, ok)
}

func TestPaletteLookup(t *testing.T) {
	palette := Palette{
		Colors: map[string]string{"background": "#F2F2F7", "primary": "#0A7AFF"},
		Dark:   map[string]string{"background": "#1C1C1E"},
	}

	value, ok := palette.Lookup("background", false)
	require.True(t, ok)
	assert.Equal(t, "#F2F2F7", value)

	value, ok = palette.Lookup("background", true)
	require.True(t, ok)
	assert.Equal(t, "#1C1C1E", value)

	value, ok = palette.Lookup("primary", true)
	require.True(t, ok)
	assert.Equal(t, "#0A7AFF", value)

	_, ok = palette.Lookup("surface", true)
	assert.False(t, ok)
}

func TestValidColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#FFF", true},
		{"#6366F1", true},
		{"#6366F110", true},
		{"transparent", true},
		{"rgba(0, 0, 0, 0.5)", true},
		{"rgb(12,34,56)", true},
		{"#GGGGGG", false},
		{"#12345", false},
		{"blue", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidColor(tt.value), tt.value)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	broken, _ := Preset("default")
	broken.Palette.Colors["primary"] = "indigo"
	broken.Spacing.LG = broken.Spacing.MD
	broken.Typography.Caption.LineHeight = broken.Typography.Caption.FontSize
	broken.Shadows.Large.Elevation = 1

	err := broken.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 4)
	assert.Contains(t, err.Error(), "palette.primary")
	assert.Contains(t, err.Error(), "spacing.lg")
	assert.Contains(t, err.Error(), "typography.caption")
	assert.Contains(t, err.Error(), "shadows.large")
}

func TestValidateEmptyPalette(t *testing.T) {
	empty, _ := Preset("default")
	empty.Palette = Palette{}
	err := empty.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette is empty")
}

const modernYAML = `name: scenario
palette:
  primary: "#0A7AFF"
  error: "#FF3B30"
  background: "#F2F2F7"
  textPrimary: "#171717"
  dark:
    background: "#1C1C1E"
spacing: {xs: 4, sm: 8, md: 16, lg: 24, xl: 32, xxl: 48}
radius: {sm: 4, md: 8, lg: 12, xl: 16, xxl: 24, full: 9999}
typography:
  h1: {fontSize: 30, fontWeight: "700", lineHeight: 36}
  h2: {fontSize: 24, fontWeight: "700", lineHeight: 30}
  h3: {fontSize: 20, fontWeight: "600", lineHeight: 26}
  body: {fontSize: 16, fontWeight: "400", lineHeight: 22}
  bodySmall: {fontSize: 14, fontWeight: "400", lineHeight: 20}
  caption: {fontSize: 12, fontWeight: "400", lineHeight: 16}
shadows:
  small: {offset: {width: 0, height: 1}, opacity: 0.05, blurRadius: 2, elevation: 2}
  medium: {offset: {width: 0, height: 2}, opacity: 0.1, blurRadius: 4, elevation: 4}
  large: {offset: {width: 0, height: 4}, opacity: 0.15, blurRadius: 8, elevation: 8}
`

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(modernYAML), 0644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "scenario", loaded.Name)
	assert.Equal(t, path, loaded.Source)
	assert.Equal(t, "#0A7AFF", loaded.Palette.Colors["primary"])
	assert.Equal(t, "#1C1C1E", loaded.Palette.Dark["background"])
	assert.NotContains(t, loaded.Palette.Colors, "dark")
	assert.Equal(t, 9999.0, loaded.Radius.Full)
	assert.Equal(t, "600", loaded.Typography.H3.FontWeight)
	assert.Equal(t, 4.0, loaded.Shadows.Large.Offset.Height)
}

func TestLoadFileRejectsUnknownSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.tokens.yaml")
	doc := "extends: default\nanimations:\n  fast: 100\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "animations")
}

func TestLoadFileExtendsPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brand.tokens.yaml")
	doc := `extends: default
palette:
  primary: "#FF5500"
  dark:
    primary: "#FF8844"
spacing:
  xxl: 64
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "brand", loaded.Name)
	assert.Equal(t, "default", loaded.Extends)
	assert.Equal(t, "#FF5500", loaded.Palette.Colors["primary"])
	assert.Equal(t, "#FF8844", loaded.Palette.Dark["primary"])
	assert.Equal(t, "#EF4444", loaded.Palette.Colors["error"])
	assert.Equal(t, "#111827", loaded.Palette.Dark["background"])
	assert.Equal(t, 64.0, loaded.Spacing.XXL)
	assert.Equal(t, 32.0, loaded.Spacing.XL)
	assert.Equal(t, 32.0, loaded.Typography.H1.FontSize)

	base, _ := Preset("default")
	assert.Equal(t, "#6366F1", base.Palette.Colors["primary"])
}

func TestNeutralSection(t *testing.T) {
	base, _ := Preset("default")
	value, ok := base.NeutralColor("textPrimary", false)
	require.True(t, ok)
	assert.Equal(t, "#1F2937", value)
	value, ok = base.NeutralColor("textPrimary", true)
	require.True(t, ok)
	assert.Equal(t, "#F9FAFB", value)

	bare := &DesignTokens{Name: "bare"}
	value, ok = bare.NeutralColor("textPrimary", true)
	require.True(t, ok)
	assert.Equal(t, "#F9FAFB", value)
	_, ok = bare.NeutralColor("primary", false)
	assert.False(t, ok)

	path := filepath.Join(t.TempDir(), "ink.tokens.yaml")
	doc := `extends: default
neutral:
  textPrimary: "#101010"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	loaded, err := LoadFile(path)
	require.NoError(t, err)
	value, _ = loaded.NeutralColor("textPrimary", false)
	assert.Equal(t, "#101010", value)
	value, _ = loaded.NeutralColor("textPrimary", true)
	assert.Equal(t, "#F9FAFB", value)

	fresh, _ := Preset("default")
	assert.Equal(t, "#1F2937", fresh.Neutral.Colors["textPrimary"])
}

func TestValidateNeutralColors(t *testing.T) {
	tk, _ := Preset("default")
	tk.Neutral.Dark["textPrimary"] = "ink"
	err := tk.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neutral.dark.textPrimary")
}

func TestParseFontWeight(t *testing.T) {
	tests := []struct {
		weight string
		want   int
		ok     bool
	}{
		{"100", 100, true},
		{"600", 600, true},
		{"900", 900, true},
		{"normal", 400, true},
		{"Bold", 700, true},
		{"950", 0, false},
		{"0", 0, false},
		{"450", 0, false},
		{"heavy", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFontWeight(tt.weight)
		assert.Equal(t, tt.ok, ok, tt.weight)
		assert.Equal(t, tt.want, got, tt.weight)
	}
}

func TestValidateFontWeight(t *testing.T) {
	tk, _ := Preset("default")
	tk.Typography.Body.FontWeight = "semibold"
	tk.Typography.Caption.FontWeight = "normal"

	err := tk.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 1)
	assert.Contains(t, err.Error(), `typography.body: fontWeight "semibold"`)
}

func TestLoadFileUnknownExtends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("extends: neon\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")
}

func TestLoadFileJSONAndTOML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "night.tokens.json")
	jsonDoc := `{"extends": "modern", "palette": {"dark": {"background": "#000000"}}}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0644))

	fromJSON, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "night", fromJSON.Name)
	assert.Equal(t, "#000000", fromJSON.Palette.Dark["background"])
	assert.Equal(t, "#0A7AFF", fromJSON.Palette.Colors["primary"])

	tomlPath := filepath.Join(dir, "warm.tokens.toml")
	tomlDoc := `name = "warm"
extends = "default"

[palette]
primary = "#D97706"

[palette.dark]
surface = "#292524"

[typography.h1]
fontSize = 36
fontWeight = "800"
lineHeight = 44
`
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlDoc), 0644))

	fromTOML, err := LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "warm", fromTOML.Name)
	assert.Equal(t, "#D97706", fromTOML.Palette.Colors["primary"])
	assert.Equal(t, "#292524", fromTOML.Palette.Dark["surface"])
	assert.Equal(t, 36.0, fromTOML.Typography.H1.FontSize)
	assert.Equal(t, "800", fromTOML.Typography.H1.FontWeight)
}

func TestLoadFileInvalidTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tokens.yaml")
	doc := "extends: default\nspacing:\n  xs: 100\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, err := LoadFile(path)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, err.Error(), "spacing.sm")
}

func TestDiscoverAndLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "brands", "acme")
	require.NoError(t, os.MkdirAll(nested, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "zeta.tokens.yaml"), []byte("extends: default\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "acme.tokens.yml"), []byte("extends: modern\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.yaml"), []byte("name: x\n"), 0644))

	files, err := Discover(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	sets, err := LoadFromDir(dir)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "acme", sets[0].Name)
	assert.Equal(t, "zeta", sets[1].Name)
}

func TestDiscoverMissingDir(t *testing.T) {
	files, err := Discover(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestLoadFromSearchPathsPrecedence(t *testing.T) {
	project := t.TempDir()
	dir := filepath.Join(project, ".themekit", "tokens")
	require.NoError(t, os.MkdirAll(dir, 0755))
	doc := "name: default\nextends: default\npalette:\n  primary: \"#123456\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "override.tokens.yaml"), []byte(doc), 0644))

	found, err := Find("default", project)
	require.NoError(t, err)
	assert.Equal(t, "#123456", found.Palette.Colors["primary"])

	modern, err := Find("modern", project)
	require.NoError(t, err)
	assert.Equal(t, "builtin", modern.Source)

	_, err = Find("missing", project)
	require.Error(t, err)
}

func TestSearchPathsOrder(t *testing.T) {
	paths := SearchPaths("/work/app")
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join("/work/app", ".themekit", "tokens"), paths[0])
	assert.Equal(t, filepath.Join(string(filepath.Separator), "usr", "share", "themekit", "tokens"), paths[len(paths)-1])
}
