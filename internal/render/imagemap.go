// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ImageMap maps figure numbers to image file names or absolute paths.
// Keys are normalized to strings at load time, so entries keyed "3" and 3
// in the source file resolve the same way.
type ImageMap map[string]string

// LoadImageMap reads a figure-number map from a JSON or YAML file.
func LoadImageMap(path string) (ImageMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image map: %w", err)
	}

	m := make(ImageMap)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw := make(map[any]any)
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing image map %s: %w", path, err)
		}
		for k, v := range raw {
			m[fmt.Sprint(k)] = fmt.Sprint(v)
		}
	default:
		raw := make(map[string]any)
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing image map %s: %w", path, err)
		}
		for k, v := range raw {
			m[k] = fmt.Sprint(v)
		}
	}
	return m, nil
}

// Lookup resolves a figure number to its mapped file reference.
func (m ImageMap) Lookup(figure int) (string, bool) {
	name, ok := m[strconv.Itoa(figure)]
	return name, ok
}

// resolvePath turns a mapped file reference into a filesystem path:
// absolute paths pass through, relative names resolve under imagesDir.
func resolvePath(name, imagesDir string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(imagesDir, name)
}
