package provider

import (
	"sync"

	"github.com/opencode-ai/themekit/internal/appearance"
	"github.com/opencode-ai/themekit/internal/tokens"
)

var (
	defaultOnce     sync.Once
	defaultProvider *Provider
)

// Default returns the process-wide provider built from the default preset
// and the detected appearance.
func Default() *Provider {
	defaultOnce.Do(func() {
		t, _ := tokens.Preset(tokens.DefaultPresetName)
		p, err := New(t, appearance.Detect(""))
		if err != nil {
			// The built-in presets always resolve.
			panic(err)
		}
		defaultProvider = p
	})
	return defaultProvider
}
