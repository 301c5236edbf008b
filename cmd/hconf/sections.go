package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conf "github.com/0xalexb/hjarta-conf"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file> [path]",
	Short: "List child sections",
	Long: "List the names of the sections directly under path, one per " +
		"line. Without a path the top-level sections are listed.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 2 {
		path = args[1]
	}

	sections, err := conf.Sections(doc, path)
	if err != nil {
		return err
	}

	for i := range sections {
		fmt.Fprintln(cmd.OutOrStdout(), sections[i].Name)
	}

	return nil
}
