package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newReferenceCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Inspect and validate reference data",
	}
	cmd.AddCommand(newReferenceShowCommand(opts))
	cmd.AddCommand(newReferenceValidateCommand(opts))
	return cmd
}

func newReferenceShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active reference snapshot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := loadReference(opts)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(ref, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newReferenceValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the reference tables of a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := loadReference(opts)
			if err != nil {
				return err
			}
			if err := ref.Validate(); err != nil {
				return fmt.Errorf("reference data invalid: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reference data %s is valid\n", ref.Version)
			return nil
		},
	}
}
