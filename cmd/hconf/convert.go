package main

import (
	"github.com/spf13/cobra"

	yamlexport "github.com/0xalexb/hjarta-conf/export/yaml"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file> [path]",
	Short: "Convert a document to YAML",
	Long: "Convert a document, or the section at path, to YAML with " +
		"declaration order preserved.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 2 {
		path = args[1]
	}

	out, err := yamlexport.NewExporter().Export(doc, path)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}
