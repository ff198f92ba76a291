// Package cli provides token and provider setup shared by commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themekit/internal/appearance"
	"github.com/opencode-ai/themekit/internal/provider"
	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/tokens"
)

// tokenSelection is the per-command override of the configured token set.
type tokenSelection struct {
	file   string
	preset string
}

// load returns the selected token set. An explicit file wins over a preset
// name; both fall back to the configuration.
func (s tokenSelection) load() (*tokens.DesignTokens, error) {
	cfg := GetConfig()

	file := strings.TrimSpace(s.file)
	preset := strings.TrimSpace(s.preset)
	if file == "" && preset == "" {
		file = cfg.Tokens.File
		preset = cfg.Tokens.Preset
	}
	if file != "" {
		t, err := tokens.LoadFile(file)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	if preset == "" {
		preset = tokens.DefaultPresetName
	}
	t, err := tokens.Find(preset, cfg.Tokens.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("%w (built-in presets: %s)", err, strings.Join(tokens.PresetNames(), ", "))
	}
	return t, nil
}

// newProvider builds a provider for the selected tokens. dark overrides the
// configured appearance when non-nil.
func newProvider(sel tokenSelection, dark *bool) (*provider.Provider, error) {
	t, err := sel.load()
	if err != nil {
		return nil, err
	}

	seed := appearance.Detect(GetConfig().Appearance.Mode)
	if dark != nil {
		seed = appearance.FromDark(*dark)
	}

	mapper, err := styles.NewMapper(GetConfig().Cache.Size)
	if err != nil {
		return nil, err
	}
	return provider.New(t, seed,
		provider.WithLogger(logger.With().Str("tokens", t.Name).Logger()),
		provider.WithMapper(mapper),
	)
}
