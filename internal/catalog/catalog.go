// Package catalog holds the read-only reference records the estimation engine
// resolves by id: materials, molding machines and sales regions.
//
// A Catalog is built once at process start (embedded YAML, a YAML file or a
// sqlite database) and never mutated afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"sigs.k8s.io/yaml"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	ErrEmptyCatalog      = errors.New("catalog must define at least one material and one machine")
	ErrUnknownMaterialID = errors.New("unknown material id")
	ErrUnknownMachineID  = errors.New("unknown machine id")
	errDuplicateID       = errors.New("duplicate id")
)

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Material is a polymer grade with the thermal properties the cooling model needs.
type Material struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Density            float64 `json:"density"`            // g/cm3
	PricePerKg         float64 `json:"pricePerKg"`         // USD
	ThermalDiffusivity float64 `json:"thermalDiffusivity"` // mm2/s
	MeltTemp           float64 `json:"meltTemp"`           // C
	MoldTemp           float64 `json:"moldTemp"`           // C
	EjectTemp          float64 `json:"ejectTemp"`          // C
}

// Machine is an injection molding machine and its hourly rate.
type Machine struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Manufacturer     string  `json:"manufacturer"`
	Model            string  `json:"model"`
	Tonnage          float64 `json:"tonnage"`
	HourlyRate       float64 `json:"hourlyRate"`       // USD/hr
	ClampingForce    float64 `json:"clampingForce"`    // kN
	TieBarHorizontal float64 `json:"tieBarHorizontal"` // mm
	TieBarVertical   float64 `json:"tieBarVertical"`   // mm
	OpeningWidth     float64 `json:"openingWidth"`     // mm
	MeltingVolume    float64 `json:"meltingVolume"`    // L
}

// Region is a sales region. The multiplier is reference data only.
type Region struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Catalog groups the reference lists. Entry 0 of each list is the fallback
// record for unknown ids.
type Catalog struct {
	Materials []Material `json:"materials"`
	Machines  []Machine  `json:"machines"`
	Regions   []Region   `json:"regions"`
}

// LookupMode selects how unknown ids are resolved.
type LookupMode int

const (
	// LookupFallback substitutes the first catalog entry for an unknown id.
	LookupFallback LookupMode = iota
	// LookupStrict reports an unknown id as an error.
	LookupStrict
)

func (m LookupMode) String() string {
	if m == LookupStrict {
		return "strict"
	}
	return "fallback"
}

// Default returns the embedded reference catalog.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes a YAML or JSON catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

func (c *Catalog) validate() error {
	if len(c.Materials) == 0 || len(c.Machines) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(c.Materials))
	for _, m := range c.Materials {
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("material %q: %w", m.ID, errDuplicateID)
		}
		seen[m.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Machines))
	for _, m := range c.Machines {
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("machine %q: %w", m.ID, errDuplicateID)
		}
		seen[m.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.Regions))
	for _, r := range c.Regions {
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("region %q: %w", r.ID, errDuplicateID)
		}
		seen[r.ID] = struct{}{}
	}

	return nil
}

// Material returns the material with the given id.
func (c *Catalog) Material(id string) (Material, bool) {
	for _, m := range c.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// Machine returns the machine with the given id.
func (c *Catalog) Machine(id string) (Machine, bool) {
	for _, m := range c.Machines {
		if m.ID == id {
			return m, true
		}
	}
	return Machine{}, false
}

// Region returns the region with the given id.
func (c *Catalog) Region(id string) (Region, bool) {
	for _, r := range c.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// ResolveMaterial looks up id according to mode. In fallback mode it never
// fails.
func (c *Catalog) ResolveMaterial(id string, mode LookupMode) (Material, error) {
	if m, ok := c.Material(id); ok {
		return m, nil
	}
	if mode == LookupStrict {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterialID, id)
	}
	return c.Materials[0], nil
}

// ResolveMachine looks up id according to mode. In fallback mode it never
// fails.
func (c *Catalog) ResolveMachine(id string, mode LookupMode) (Machine, error) {
	if m, ok := c.Machine(id); ok {
		return m, nil
	}
	if mode == LookupStrict {
		return Machine{}, fmt.Errorf("%w: %q", ErrUnknownMachineID, id)
	}
	return c.Machines[0], nil
}
