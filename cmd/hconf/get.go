package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	conf "github.com/0xalexb/hjarta-conf"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Print the value of a single property",
	Long: "Resolve a dotted path to a property and print its value. " +
		"With --type the value is checked against the requested type " +
		"and strings are printed without quotes.",
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringP("type", "t", "auto", "Expected value type (auto, int, bool, string, list)")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	want, _ := cmd.Flags().GetString("type")

	doc, err := loadDocument(name)
	if err != nil {
		return err
	}

	out, err := renderValue(doc, path, want)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}

func renderValue(doc *conf.Document, path, want string) (string, error) {
	switch want {
	case "auto":
		item, err := conf.Lookup(doc, path)
		if err != nil {
			return "", err
		}

		return itemText(item), nil

	case "int":
		n, err := conf.Int[int64](doc, path)
		if err != nil {
			return "", err
		}

		return strconv.FormatInt(n, 10), nil

	case "bool":
		b, err := conf.Bool(doc, path)
		if err != nil {
			return "", err
		}

		return strconv.FormatBool(b), nil

	case "string":
		s, err := conf.Str(doc, path)
		if err != nil {
			return "", err
		}

		return s, nil

	case "list":
		values, err := conf.List(doc, path)
		if err != nil {
			return "", err
		}

		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v.String()
		}

		return "[" + strings.Join(parts, ", ") + "]", nil

	default:
		return "", fmt.Errorf("unknown type %q: want auto, int, bool, string, or list", want)
	}
}
