// Package cli implements the riskctl command tree: offline entity scoring
// and reference-data inspection against the same engine the API serves.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sentineldata/riskintel/internal/config"
	"github.com/sentineldata/riskintel/internal/domain/risk"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the riskctl root command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "riskctl",
		Short:         "Entity risk intelligence toolkit",
		Long:          "riskctl scores entity profiles and inspects reference data using the same scoring engine the screening API serves.",
		Version:       fmt.Sprintf("%s (commit %s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "",
		"path to a YAML config file; reference tables default to the built-in snapshot")

	cmd.AddCommand(newScoreCommand(opts))
	cmd.AddCommand(newReferenceCommand(opts))
	return cmd
}

// loadReference resolves the reference snapshot: the config file's tables
// when --config is given, the built-in defaults otherwise.
func loadReference(opts *RootOptions) (*risk.Reference, error) {
	if opts.ConfigPath == "" {
		return risk.DefaultReference(), nil
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	ref := cfg.Risk.Reference
	return &ref, nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
