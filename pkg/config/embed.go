package config

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*.yaml
var embeddedDefaults embed.FS

// DefaultsFile is the name of the bundled defaults inside EmbeddedFS.
const DefaultsFile = "defaults.yaml"

// EmbeddedFS returns the bundled defaults.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// defaults/ is embedded at build time.
		panic(err)
	}
	return sub
}
