// Package cli provides token set commands.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tokens"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.AddCommand(tokensListCmd)
	tokensCmd.AddCommand(tokensValidateCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage design token sets",
	Long:  "List and validate design token sets.",
}

// TokenSetInfo describes one available token set.
type TokenSetInfo struct {
	Name    string `json:"name"`
	Source  string `json:"source"`
	Extends string `json:"extends,omitempty"`
	Builtin bool   `json:"builtin"`
}

var tokensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available token sets",
	Long:  "List token sets from the project, user and system search paths, then the built-in presets.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := tokens.LoadFromSearchPaths(GetConfig().Tokens.ProjectDir)
		if err != nil {
			return err
		}

		infos := make([]TokenSetInfo, 0, len(sets))
		for _, t := range sets {
			infos = append(infos, TokenSetInfo{
				Name:    t.Name,
				Source:  t.Source,
				Extends: t.Extends,
				Builtin: t.Source == "builtin",
			})
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(out, infos)
		}

		list := newTable("NAME", "KIND", "SOURCE")
		for _, info := range infos {
			list.add(info.Name, tokenSetKind(info), info.Source)
		}
		return list.write(out)
	},
}

// ValidationResult is one file's outcome from `themekit tokens validate`.
type ValidationResult struct {
	Path     string   `json:"path"`
	Name     string   `json:"name,omitempty"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

var errValidationFailed = errors.New("token validation failed")

var tokensValidateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate token files",
	Long:  "Load each token file, check the token invariants and resolve it in both modes.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]ValidationResult, 0, len(args))
		failed := false
		for _, path := range args {
			step := startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Validating %s", path))
			result := validateTokenFile(path)
			if result.Valid {
				step.Done()
			} else {
				failed = true
				step.Fail(nil)
			}
			results = append(results, result)
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() || IsJSONLOutput() {
			if err := WriteOutput(out, results); err != nil {
				return err
			}
		} else {
			for _, result := range results {
				var err error
				if !result.Valid {
					err = errValidationFailed
				}
				fmt.Fprintf(out, "%s %s\n", formatValidationStatus(err), result.Path)
				for _, problem := range result.Problems {
					fmt.Fprintf(out, "  - %s\n", problem)
				}
			}
		}

		if failed {
			return errValidationFailed
		}
		return nil
	},
}

func validateTokenFile(path string) ValidationResult {
	result := ValidationResult{Path: path}

	t, err := tokens.LoadFile(path)
	if err != nil {
		var verr *tokens.ValidationError
		if errors.As(err, &verr) {
			result.Name = verr.Name
			result.Problems = verr.Problems
		} else {
			result.Problems = []string{err.Error()}
		}
		return result
	}
	result.Name = t.Name

	for _, dark := range []bool{false, true} {
		if _, err := theme.Resolve(t, dark); err != nil {
			result.Problems = append(result.Problems, err.Error())
		}
	}
	result.Valid = len(result.Problems) == 0
	return result
}
