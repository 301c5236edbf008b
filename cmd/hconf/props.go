package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cobra"

	conf "github.com/0xalexb/hjarta-conf"
)

var propsCmd = &cobra.Command{
	Use:   "props <file> [path]",
	Short: "List properties",
	Long: "List the properties of the flat section at path, or every " +
		"property in the document when no path is given. A --filter " +
		"expression sees {name, section, kind, value} per property and " +
		"keeps those it evaluates true for.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runProps,
}

func init() {
	propsCmd.Flags().StringP("filter", "f", "", "Boolean filter expression")

	rootCmd.AddCommand(propsCmd)
}

func runProps(cmd *cobra.Command, args []string) error {
	filterSrc, _ := cmd.Flags().GetString("filter")

	filter, err := compileFilter(filterSrc)
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	var entries []propEntry

	if len(args) == 2 {
		items, err := conf.Properties(doc, args[1])
		if err != nil {
			return err
		}

		for _, item := range items {
			entries = append(entries, propEntry{item: item})
		}
	} else {
		entries = walkProperties(doc)
	}

	for _, entry := range entries {
		keep, err := filterEntry(filter, entry)
		if err != nil {
			return err
		}

		if !keep {
			continue
		}

		name := entry.item.Name
		if entry.section != "" {
			name = entry.section + "." + name
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, itemText(&entry.item))
	}

	return nil
}

// compileFilter builds the filter program. An empty source means no
// filtering and yields a nil program.
func compileFilter(source string) (*vm.Program, error) {
	if source == "" {
		return nil, nil
	}

	env := map[string]any{
		"name":    "",
		"section": "",
		"kind":    "",
		"value":   any(nil),
	}

	program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", source, err)
	}

	return program, nil
}

// filterEntry runs the filter program against one property.
func filterEntry(program *vm.Program, entry propEntry) (bool, error) {
	if program == nil {
		return true, nil
	}

	env := map[string]any{
		"name":    entry.item.Name,
		"section": entry.section,
		"kind":    string(entry.item.Kind),
		"value":   filterValue(&entry.item),
	}

	result, err := vm.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter: %w", err)
	}

	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, want bool", result)
	}

	return keep, nil
}

// filterValue converts an item's value to the Go representation the
// filter expression sees.
func filterValue(item *conf.Item) any {
	if item.Kind == conf.ItemList {
		values := make([]any, len(item.Values))
		for i, v := range item.Values {
			values[i] = scalarGo(v)
		}

		return values
	}

	return scalarGo(item.Value)
}

func scalarGo(v conf.Value) any {
	switch v.Kind {
	case conf.ValueBool:
		return v.Flag
	case conf.ValueString:
		return v.Str
	default:
		return v.Num
	}
}
