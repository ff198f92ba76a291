// Command themekit resolves design tokens into themes and component styles.
package main

import (
	"os"

	"github.com/opencode-ai/themekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
