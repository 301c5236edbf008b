package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/fetcher/file"
)

// loadSource reads the raw document bytes. The name "-" selects stdin.
func loadSource(name string) ([]byte, error) {
	if name == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return src, nil
	}

	fetcher, err := file.NewFetcher(name, file.WithMaxSize(viper.GetInt64("max_size")))()
	if err != nil {
		return nil, err
	}

	return fetcher.Fetch()
}

// parseOptions builds parse options from the persistent flags.
func parseOptions() []conf.Option {
	opts := []conf.Option{conf.WithMaxDepth(viper.GetInt("max_depth"))}

	if tag := viper.GetString("env"); tag != "" {
		opts = append(opts, conf.WithEnvironmentTag(tag))
	}

	return opts
}

// loadDocument reads and parses the named document.
func loadDocument(name string) (*conf.Document, error) {
	src, err := loadSource(name)
	if err != nil {
		return nil, err
	}

	return conf.Parse(src, parseOptions()...)
}

// itemText renders an item's value on a single line in canonical form.
func itemText(item *conf.Item) string {
	if item.Kind == conf.ItemList {
		parts := make([]string, len(item.Values))
		for i, v := range item.Values {
			parts[i] = v.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	}

	return item.Value.String()
}

// propEntry is a property together with the dotted path of its section.
type propEntry struct {
	section string
	item    conf.Item
}

// walkProperties collects every property in the document, depth first,
// in declaration order.
func walkProperties(doc *conf.Document) []propEntry {
	var entries []propEntry

	var walk func(prefix string, sections []conf.Section)
	walk = func(prefix string, sections []conf.Section) {
		for i := range sections {
			sec := &sections[i]

			path := sec.Name
			if prefix != "" {
				path = prefix + "." + sec.Name
			}

			for _, item := range sec.Items {
				entries = append(entries, propEntry{section: path, item: item})
			}

			walk(path, sec.Children)
		}
	}

	walk("", doc.Sections)

	return entries
}
