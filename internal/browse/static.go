// Package browse presents detected projects: as plain lines, as JSON, or
// in an interactive table.
package browse

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
)

// Entry is the serialized form of a detected project.
type Entry struct {
	Path        string `json:"path"`
	Type        string `json:"type"`
	DisplayName string `json:"display_name"`
	Command     string `json:"command"`
}

// Entries converts targets to their serialized form.
func Entries(targets []project.Target) []Entry {
	entries := make([]Entry, 0, len(targets))
	for _, t := range targets {
		entries = append(entries, Entry{
			Path:        t.Path,
			Type:        t.Type.String(),
			DisplayName: t.Type.DisplayName(),
			Command:     t.Type.Command().String(),
		})
	}
	return entries
}

// PrintStatic writes one tab-separated line per project:
// type, command, path.
func PrintStatic(w io.Writer, targets []project.Target) error {
	for _, e := range Entries(targets) {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.Type, e.Command, e.Path); err != nil {
			return err
		}
	}
	return nil
}

// PrintJSON writes the projects as an indented JSON array. An empty
// result is written as [].
func PrintJSON(w io.Writer, targets []project.Target) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Entries(targets))
}
