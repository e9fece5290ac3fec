package project

import (
	"os"
	"path/filepath"
)

// Classify inspects the immediate children of dir for marker files.
// Dioxus.toml wins over Cargo.toml when both are present. Subdirectories
// are not examined.
func Classify(dir string) Type {
	for _, d := range definitions {
		if exists(filepath.Join(dir, d.def.marker)) {
			return d.typ
		}
	}
	return Regular
}

// NewTarget classifies dir and returns it as a Target.
func NewTarget(dir string) Target {
	return Target{Path: dir, Type: Classify(dir)}
}

// exists treats any stat error as absence.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
