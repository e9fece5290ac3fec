// Package project classifies directories by the build tool that owns them
// and describes how each kind of project is cleaned.
package project

import "strings"

// Type identifies the build tool of a project root.
type Type int

const (
	// Regular is a directory without any recognized marker file.
	Regular Type = iota
	// Rust is a Cargo project (Cargo.toml).
	Rust
	// Dioxus is a Dioxus project (Dioxus.toml).
	Dioxus
)

// Marker file names.
const (
	CargoMarker  = "Cargo.toml"
	DioxusMarker = "Dioxus.toml"
)

// Command is a program and its argument vector.
type Command struct {
	Program string
	Args    []string
}

// String renders the command line with single spaces.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// AutoClean holds the flags that bypass the confirmation prompt.
type AutoClean struct {
	YesCargo  bool
	YesDioxus bool
	YesAll    bool
}

// Target is a visited directory together with its classification.
type Target struct {
	Path string
	Type Type
}

// definition is the fixed behavior attached to a non-Regular type.
type definition struct {
	tag         string
	displayName string
	marker      string
	command     Command
}

// definitions is ordered by classification priority.
var definitions = []struct {
	typ Type
	def definition
}{
	{Dioxus, definition{
		tag:         "dioxus",
		displayName: "Dioxus",
		marker:      DioxusMarker,
		command:     Command{Program: "dx", Args: []string{"clean"}},
	}},
	{Rust, definition{
		tag:         "rust",
		displayName: "Rust",
		marker:      CargoMarker,
		command:     Command{Program: "cargo", Args: []string{"clean"}},
	}},
}

func lookup(t Type) (definition, bool) {
	for _, d := range definitions {
		if d.typ == t {
			return d.def, true
		}
	}
	return definition{}, false
}

// String returns the lower-case tag used in logs and JSON output.
func (t Type) String() string {
	if d, ok := lookup(t); ok {
		return d.tag
	}
	return "regular"
}

// DisplayName returns the human-readable project kind, e.g. "Rust".
// It is empty for Regular.
func (t Type) DisplayName() string {
	d, _ := lookup(t)
	return d.displayName
}

// Marker returns the file whose presence identifies the type.
func (t Type) Marker() string {
	d, _ := lookup(t)
	return d.marker
}

// Command returns the clean command for the type. The zero Command is
// returned for Regular.
func (t Type) Command() Command {
	d, ok := lookup(t)
	if !ok {
		return Command{}
	}
	return Command{Program: d.command.Program, Args: append([]string(nil), d.command.Args...)}
}

// ShouldAutoClean reports whether the flags allow cleaning this type
// without asking.
func (t Type) ShouldAutoClean(flags AutoClean) bool {
	switch t {
	case Rust:
		return flags.YesCargo || flags.YesAll
	case Dioxus:
		return flags.YesDioxus || flags.YesAll
	default:
		return false
	}
}

// IsProject reports whether t is anything other than Regular.
func (t Type) IsProject() bool {
	return t != Regular
}
