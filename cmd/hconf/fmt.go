package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	conf "github.com/0xalexb/hjarta-conf"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reprint a document in canonical form",
	Long: "Parse a document and print it back in canonical form: fixed " +
		"indentation, one construct per line, comments dropped. With " +
		"--write the file is rewritten in place instead.",
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Rewrite the file instead of printing")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	name := args[0]
	write, _ := cmd.Flags().GetBool("write")

	doc, err := loadDocument(name)
	if err != nil {
		return err
	}

	out := conf.Marshal(doc)

	if !write {
		_, err = cmd.OutOrStdout().Write(out)

		return err
	}

	if name == "-" {
		return fmt.Errorf("cannot write stdin in place")
	}

	info, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("stat file %q: %w", name, err)
	}

	if err := os.WriteFile(name, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing file %q: %w", name, err)
	}

	return nil
}
