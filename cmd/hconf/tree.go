package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	conf "github.com/0xalexb/hjarta-conf"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Render the document as a tree",
	Long: "Render the whole document as an indented tree with sections " +
		"and properties. Colors degrade automatically when stdout is " +
		"not a terminal; --plain disables them entirely.",
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().Bool("plain", false, "Disable styled output")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	plain, _ := cmd.Flags().GetBool("plain")

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderTree(doc, args[0], !plain))

	return nil
}

// treeStyles holds the render functions for each node class.
type treeStyles struct {
	root    func(string) string
	section func(string) string
	value   func(string) string
}

func plainTreeStyles() treeStyles {
	identity := func(s string) string { return s }

	return treeStyles{root: identity, section: identity, value: identity}
}

func colorTreeStyles() treeStyles {
	rootStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return treeStyles{
		root:    func(s string) string { return rootStyle.Render(s) },
		section: func(s string) string { return sectionStyle.Render(s) },
		value:   func(s string) string { return valueStyle.Render(s) },
	}
}

func renderTree(doc *conf.Document, root string, styled bool) string {
	styles := plainTreeStyles()
	if styled {
		styles = colorTreeStyles()
	}

	if tag, ok := conf.EnvironmentTag[string](doc); ok {
		root += " (" + tag + ")"
	}

	var b strings.Builder

	b.WriteString(styles.root(root) + "\n")
	writeTreeSections(&b, doc.Sections, "", styles)

	return b.String()
}

func writeTreeSections(b *strings.Builder, sections []conf.Section, prefix string, styles treeStyles) {
	for i := range sections {
		sec := &sections[i]

		branch, cont := "├── ", "│   "
		if i == len(sections)-1 {
			branch, cont = "└── ", "    "
		}

		b.WriteString(prefix + branch + styles.section(sec.Name) + "\n")

		if sec.Mode == conf.BodyFlat {
			writeTreeItems(b, sec.Items, prefix+cont, styles)
		} else {
			writeTreeSections(b, sec.Children, prefix+cont, styles)
		}
	}
}

func writeTreeItems(b *strings.Builder, items []conf.Item, prefix string, styles treeStyles) {
	for i := range items {
		item := &items[i]

		branch := "├── "
		if i == len(items)-1 {
			branch = "└── "
		}

		b.WriteString(prefix + branch + item.Name + " = " + styles.value(itemText(item)) + "\n")
	}
}
