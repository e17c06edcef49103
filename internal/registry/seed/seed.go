// Package seed loads the list of managed groups used to bootstrap the registry.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"warden/internal/registry"
	id "warden/pkg/domain"
)

//go:embed groups.yaml
var defaultGroups []byte

type document struct {
	Groups []entry `yaml:"groups"`
}

type entry struct {
	ID      int64  `yaml:"id"`
	Network string `yaml:"network"`
	Label   string `yaml:"label"`
	Region  *int   `yaml:"region,omitempty"`
	Legacy  bool   `yaml:"legacy,omitempty"`
}

// Default returns the embedded group list.
func Default() ([]registry.Group, error) {
	return Parse(defaultGroups)
}

// Load reads the group list from path, or the embedded list when path is empty.
func Load(path string) ([]registry.Group, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	groups, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return groups, nil
}

// Parse decodes a YAML group list. Every group needs a non-zero ID and a
// known network, and IDs must be unique.
func Parse(data []byte) ([]registry.Group, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[int64]struct{}, len(doc.Groups))
	groups := make([]registry.Group, 0, len(doc.Groups))
	for i, e := range doc.Groups {
		if e.ID == 0 {
			return nil, fmt.Errorf("group %d: id is required", i)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("group %d: duplicate id %d", i, e.ID)
		}
		seen[e.ID] = struct{}{}

		// stored tags are canonical; seed files may use any case
		network := registry.ParseNetwork(strings.ToUpper(strings.TrimSpace(e.Network)))
		if network == registry.NetworkUnknown {
			return nil, fmt.Errorf("group %d: unknown network %q", e.ID, e.Network)
		}
		groups = append(groups, registry.Group{
			ID:         id.GroupID(e.ID),
			Network:    network,
			Label:      e.Label,
			RegionCode: e.Region,
			Legacy:     e.Legacy,
		})
	}
	return groups, nil
}
