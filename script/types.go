// Package script parses script resources (the bytecode container behind
// every scene/menu's logic) and disassembles their command streams into
// a symbolic listing.
package script

// Area is one entry of a script's area table: a rectangle plus flags.
type Area struct {
	X0, Y0, X1, Y1, Flags uint32
}

// ScriptListing is the disassembly of a single script within a resource.
type ScriptListing struct {
	Index int
	Lines []string
}

// Listing is the fully parsed contents of one script resource.
type Listing struct {
	Name string

	Strings    []string
	Palettes   []string
	Exits      []string
	Animations []string
	Smc        []string
	Themes     []string
	Sounds     []string

	CursorCount uint32
	Areas       []Area

	Scripts        []ScriptListing
	MissingOpcodes []uint32
}
