// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrEmptyCatalog is returned when a catalog file holds no bodies.
var ErrEmptyCatalog = errors.New("body catalog is empty")

// LoadBodyDefinitions reads a JSON catalog file. An empty path yields the
// built-in catalog.
func LoadBodyDefinitions(path string) ([]BodyDefinition, error) {
	if path == "" {
		return DefaultBodies(), nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read body catalog file: %w", err)
	}

	bodies, err := ParseBodyDefinitions(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load body catalog %s: %w", path, err)
	}

	log.Printf("Loaded %d body definitions from %s", len(bodies), path)
	return bodies, nil
}

// ParseBodyDefinitions decodes and validates a JSON catalog.
func ParseBodyDefinitions(data []byte) ([]BodyDefinition, error) {
	var bodies []BodyDefinition
	if err := json.Unmarshal(data, &bodies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal body definitions: %w", err)
	}
	if err := Validate(bodies); err != nil {
		return nil, err
	}
	return bodies, nil
}

// Validate checks that the catalog can be instantiated.
func Validate(bodies []BodyDefinition) error {
	if len(bodies) == 0 {
		return ErrEmptyCatalog
	}
	ids := make(map[string]struct{}, len(bodies))
	for i, b := range bodies {
		if b.ID == "" {
			return fmt.Errorf("body #%d: missing id", i)
		}
		if _, dup := ids[b.ID]; dup {
			return fmt.Errorf("body %q: duplicate id", b.ID)
		}
		ids[b.ID] = struct{}{}
		if b.Texture == "" {
			return fmt.Errorf("body %q: missing texture", b.ID)
		}
		if b.Radius <= 0 {
			return fmt.Errorf("body %q: radius must be positive, got %g", b.ID, b.Radius)
		}
	}
	return nil
}
