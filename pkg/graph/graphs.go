package graph

import "fmt"

// Built-in graph names. Each one extends the previous.
const (
	BasicName      = "basic"
	ProperNounName = "basic+propernoun"
	DefaultName    = "basic+propernoun+numeral"
	FullName       = "basic+propernoun+numeral+copula"
)

var builtins = map[string][]Definition{
	BasicName:      {Basic},
	ProperNounName: {Basic, ProperNoun},
	DefaultName:    {Basic, ProperNoun, Numeral},
	FullName:       {Basic, ProperNoun, Numeral, Copula},
}

// Names lists the built-in graphs from the smallest to the largest.
func Names() []string {
	return []string{BasicName, ProperNounName, DefaultName, FullName}
}

// Default builds the basic graph extended with proper nouns and numerals.
// The copula is left out; ask for FullName to get it.
func Default() (*Graph, error) {
	return ByName(DefaultName)
}

// ByName builds one of the built-in graphs. The empty name and "default"
// select Default, "full" selects FullName.
func ByName(name string) (*Graph, error) {
	switch name {
	case "", "default":
		name = DefaultName
	case "full":
		name = FullName
	}
	defs, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown suffix graph %q (known: %v)", name, Names())
	}
	return New(name, defs...)
}

// Known reports whether ByName accepts name.
func Known(name string) bool {
	switch name {
	case "", "default", "full":
		return true
	}
	_, ok := builtins[name]
	return ok
}
