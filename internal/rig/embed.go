package rig

import (
	"embed"
	"fmt"
	"os"
)

//go:embed rigs/*.yaml
var rigsFS embed.FS

// DefaultName is the embedded rig used when no path is configured.
const DefaultName = "biped.yaml"

// Load reads a rig from path, or the embedded default when path is empty.
func Load(path string) (*Rig, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = rigsFS.ReadFile("rigs/" + DefaultName)
		path = DefaultName
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("rig: load %s: %w", path, err)
	}
	return Parse(data)
}
