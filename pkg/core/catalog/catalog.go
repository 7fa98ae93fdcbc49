// Package catalog holds the static reference data: the named capital
// configurations a user can explore. The built-in set can be replaced by
// an HJSON file so instructors can edit production tables by hand.
package catalog

import (
	"fmt"
	"os"
	"sync"

	hjson "github.com/hjson/hjson-go/v4"

	"econ_explorer/pkg/models"
)

// Catalog is an immutable, name-unique set of capital configurations.
type Catalog struct {
	configs []models.CapitalConfiguration
	byName  map[string]int
}

// Default returns the built-in configurations.
func Default() *Catalog {
	c, err := New([]models.CapitalConfiguration{
		{
			Name:            "Standard Oven",
			Icon:            "🔥",
			FixedCost:       100,
			ProductionTable: []float64{0, 10, 25, 45, 60, 70, 75, 77, 78, 78, 75},
		},
		{
			Name:            "Double Oven",
			Icon:            "♨️",
			FixedCost:       180,
			ProductionTable: []float64{0, 12, 30, 55, 75, 90, 100, 107, 112, 115, 116},
		},
		{
			Name:            "Industrial Line",
			Icon:            "🏭",
			FixedCost:       350,
			ProductionTable: []float64{0, 15, 40, 75, 110, 140, 165, 185, 200, 210, 215},
		},
	})
	if err != nil {
		// Built-ins are checked by tests; a bad set is a programming error.
		panic(err)
	}
	return c
}

// New validates and wraps a configuration list. Names must be unique and
// non-empty, production tables non-empty with non-negative entries.
func New(configs []models.CapitalConfiguration) (*Catalog, error) {
	byName := make(map[string]int, len(configs))
	for i, cfg := range configs {
		if cfg.Name == "" {
			return nil, fmt.Errorf("configuration %d has no name", i)
		}
		if _, dup := byName[cfg.Name]; dup {
			return nil, fmt.Errorf("duplicate configuration name: %s", cfg.Name)
		}
		if len(cfg.ProductionTable) == 0 {
			return nil, fmt.Errorf("configuration %s has an empty production table", cfg.Name)
		}
		for j, q := range cfg.ProductionTable {
			if q < 0 {
				return nil, fmt.Errorf("configuration %s: negative production %f at labour %d", cfg.Name, q, j)
			}
		}
		byName[cfg.Name] = i
	}
	return &Catalog{configs: configs, byName: byName}, nil
}

// hjsonFile mirrors the catalog file layout. HJSON so the file tolerates
// comments and trailing commas when edited by hand.
type hjsonFile struct {
	Configurations []struct {
		Name            string    `json:"name"`
		Icon            string    `json:"icon"`
		FixedCost       float64   `json:"fixed_cost"`
		ProductionTable []float64 `json:"production_table"`
	} `json:"configurations"`
}

// LoadFile reads a catalog from an HJSON file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes HJSON catalog bytes.
func Parse(data []byte) (*Catalog, error) {
	var file hjsonFile
	if err := hjson.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog HJSON: %w", err)
	}
	configs := make([]models.CapitalConfiguration, 0, len(file.Configurations))
	for _, c := range file.Configurations {
		configs = append(configs, models.CapitalConfiguration{
			Name:            c.Name,
			Icon:            c.Icon,
			FixedCost:       c.FixedCost,
			ProductionTable: c.ProductionTable,
		})
	}
	return New(configs)
}

// All returns the configurations in definition order.
func (c *Catalog) All() []models.CapitalConfiguration {
	out := make([]models.CapitalConfiguration, len(c.configs))
	copy(out, c.configs)
	return out
}

// Get looks a configuration up by name.
func (c *Catalog) Get(name string) (models.CapitalConfiguration, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.CapitalConfiguration{}, false
	}
	return c.configs[i], true
}

// Names lists the configuration names in definition order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.configs))
	for i, cfg := range c.configs {
		names[i] = cfg.Name
	}
	return names
}

// Shared process-wide catalog, installed at startup.
var (
	active *Catalog
	mu     sync.RWMutex
)

// Active returns the process catalog, defaulting to the built-ins.
func Active() *Catalog {
	mu.RLock()
	c := active
	mu.RUnlock()
	if c != nil {
		return c
	}
	mu.Lock()
	defer mu.Unlock()
	if active == nil {
		active = Default()
	}
	return active
}

// SetActive installs the process catalog (startup only).
func SetActive(c *Catalog) {
	mu.Lock()
	defer mu.Unlock()
	active = c
}
