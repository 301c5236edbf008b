package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check documents for syntax errors",
	Long: "Parse each file and report the result. Parse errors are " +
		"printed with line, column, and a source excerpt. The command " +
		"fails when any file does.",
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := 0

	for _, name := range args {
		doc, err := loadDocument(name)
		if err != nil {
			failed++

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, err)

			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d sections)\n", name, len(doc.Sections))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}

	return nil
}
