package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtmuztaba/portfolio/internal/content"
)

var validateDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate content files against their schemas",
	Long: `Load every content file, check it against its JSON schema and the record rules,
and report the first problem found. Without --dir the embedded content is checked.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateDir, "dir", "", "Content directory (defaults to the embedded content)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	c, err := content.Load(content.Dir(validateDir))
	if err != nil {
		var verr *content.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d schema violation(s)\n", len(verr.Errors))
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Content OK: %d image groups, %d tracked documents\n", c.GroupCount(), len(c.Links()))
	return nil
}
