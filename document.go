package conf

// BodyMode discriminates what a section body holds. A block is fixed by
// its first child: property children make it flat, section children make
// it nested. The two never mix. An empty block is nested with zero
// children.
type BodyMode string

// Section body modes.
const (
	BodyFlat   BodyMode = "flat"   // body holds properties
	BodyNested BodyMode = "nested" // body holds sections
)

// ItemKind discriminates the property variants.
type ItemKind string

// Property kinds.
const (
	ItemPair ItemKind = "pair" // single scalar value
	ItemList ItemKind = "list" // ordered sequence of scalar values
)

// Item is one property inside a flat section. Kind selects which field is
// meaningful: Value for ItemPair, Values for ItemList.
type Item struct {
	Name   string
	Kind   ItemKind
	Value  Value
	Values []Value
}

// Section is one named block. Mode selects which child slice is
// meaningful: Items for BodyFlat, Children for BodyNested. Source order is
// preserved in both.
type Section struct {
	Name     string
	Mode     BodyMode
	Items    []Item
	Children []Section
}

// Item returns the first property with the given name, or nil when the
// section is nested or no property matches.
func (s *Section) Item(name string) *Item {
	for i := range s.Items {
		if s.Items[i].Name == name {
			return &s.Items[i]
		}
	}
	return nil
}

// Child returns the first child section with the given name, or nil when
// the section is flat or no child matches.
func (s *Section) Child(name string) *Section {
	return findSection(s.Children, name)
}

// Document is a parsed configuration: an ordered sequence of top-level
// sections plus the environment tag the document was parsed under.
type Document struct {
	Sections []Section

	envTag string
}

// Section returns the first top-level section with the given name, or nil
// when no section matches.
func (d *Document) Section(name string) *Section {
	return findSection(d.Sections, name)
}

func findSection(sections []Section, name string) *Section {
	for i := range sections {
		if sections[i].Name == name {
			return &sections[i]
		}
	}
	return nil
}

func sectionNames(sections []Section) []string {
	names := make([]string, len(sections))
	for i := range sections {
		names[i] = sections[i].Name
	}
	return names
}

func itemNames(items []Item) []string {
	names := make([]string, len(items))
	for i := range items {
		names[i] = items[i].Name
	}
	return names
}
