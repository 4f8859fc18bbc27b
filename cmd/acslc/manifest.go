package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// manifestFile is the shape of an acslc.toml build manifest: a flat list of
// source paths, compiled in order.
type manifestFile struct {
	Shaders []string `toml:"shaders"`
}

func loadManifest(path string) ([]string, error) {
	var m manifestFile
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	if len(m.Shaders) == 0 {
		return nil, fmt.Errorf("manifest %s declares no shaders", path)
	}
	return m.Shaders, nil
}
