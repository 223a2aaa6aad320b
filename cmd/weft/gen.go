package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weftml/weft/internal/gen"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate code from the project's configuration tables.

Types:
  tags   Regenerate pkg/tags/tags_gen.go from the tag registry table`,
	}

	cmd.AddCommand(genTagsCmd())
	return cmd
}

func genTagsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Generate per-tag constructors from the registry table",
		Long: `Render one constructor per entry of the tag registry table, wrapping
the generic element constructors in pkg/markup.

The output is deterministic - running it multiple times produces
identical output unless the table changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gen.WriteFile(output, gen.Table); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d tags)\n", output, len(gen.Table))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", gen.DefaultOutput, "Output file")
	return cmd
}
