package tokens

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilePattern matches token files below a search directory.
const FilePattern = "**/*.tokens.{yaml,yml,json,toml}"

// SearchPaths returns token search directories in precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 3)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themekit", "tokens"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themekit", "tokens"))
	}

	paths = append(paths, filepath.Join(string(filepath.Separator), "usr", "share", "themekit", "tokens"))
	return paths
}

// Discover returns the token files below dir, sorted. A missing directory
// yields no files.
func Discover(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat tokens dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tokens path %s is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), FilePattern)
	if err != nil {
		return nil, fmt.Errorf("discover tokens in %s: %w", dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		files = append(files, filepath.Join(dir, filepath.FromSlash(match)))
	}
	sort.Strings(files)
	return files, nil
}

// LoadFromDir loads every token file below dir, sorted by name.
func LoadFromDir(dir string) ([]*DesignTokens, error) {
	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	sets := make([]*DesignTokens, 0, len(files))
	for _, file := range files {
		t, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		sets = append(sets, t)
	}

	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].Name < sets[j].Name
	})
	return sets, nil
}

// LoadFromSearchPaths loads token sets from the search paths with first-hit
// precedence by name; built-in presets fill in names not found on disk.
func LoadFromSearchPaths(projectDir string) ([]*DesignTokens, error) {
	seen := make(map[string]*DesignTokens)
	order := make([]string, 0)

	add := func(t *DesignTokens) {
		if _, exists := seen[t.Name]; exists {
			return
		}
		seen[t.Name] = t
		order = append(order, t.Name)
	}

	for _, path := range SearchPaths(projectDir) {
		sets, err := LoadFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, t := range sets {
			add(t)
		}
	}
	for _, t := range Builtins() {
		add(t)
	}

	resolved := make([]*DesignTokens, 0, len(order))
	for _, name := range order {
		resolved = append(resolved, seen[name])
	}
	return resolved, nil
}

// Find returns the named token set using search path precedence.
func Find(name, projectDir string) (*DesignTokens, error) {
	sets, err := LoadFromSearchPaths(projectDir)
	if err != nil {
		return nil, err
	}
	for _, t := range sets {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("token set %q not found", name)
}
