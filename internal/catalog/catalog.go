package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Species is the broad animal category a breed belongs to.
type Species string

const (
	SpeciesCattle  Species = "Cattle"
	SpeciesBuffalo Species = "Buffalo"
)

// ErrNotFound is returned when a lookup does not match any record.
var ErrNotFound = errors.New("breed not found")

// WeightRange holds the typical adult body weight per sex.
type WeightRange struct {
	Male   string `json:"male"`
	Female string `json:"female"`
}

// BreedingInfo describes the reproductive profile of a breed.
type BreedingInfo struct {
	AgeAtFirstCalving string `json:"age_at_first_calving"`
	CalvingInterval   string `json:"calving_interval"`
	BreedingSeason    string `json:"breeding_season"`
}

// Record is one immutable breed entry. The table is built once at startup
// and never mutated afterwards; accessors hand out copies.
type Record struct {
	ID                 int          `json:"id"`
	Slug               string       `json:"-"`
	Name               string       `json:"name"`
	Species            Species      `json:"type"`
	Origin             string       `json:"origin"`
	Description        string       `json:"description"`
	Characteristics    string       `json:"characteristics"`
	MilkYield          string       `json:"milk_yield"`
	Colors             []string     `json:"colors"`
	Weight             WeightRange  `json:"weight"`
	SpecialFeatures    []string     `json:"special_features"`
	Uses               []string     `json:"uses"`
	CareTips           []string     `json:"care_tips"`
	BreedingInfo       BreedingInfo `json:"breeding_info"`
	EconomicImportance string       `json:"economic_importance"`
	ImageURL           string       `json:"image_url"`

	// SelectionWeight is the probability mass this breed receives from the
	// mock identification draw. The weights across the table sum to 1.0.
	SelectionWeight float64 `json:"-"`
}

// Catalog indexes the static breed table by slug and integer id.
type Catalog struct {
	records []Record
	byID    map[int]int
	bySlug  map[string]int
}

// New builds the catalog from the built-in breed table and verifies its
// invariants: unique ids, names and slugs, and selection weights summing
// to 1.0.
func New() (*Catalog, error) {
	records := breedTable()

	c := &Catalog{
		records: records,
		byID:    make(map[int]int, len(records)),
		bySlug:  make(map[string]int, len(records)),
	}

	names := make(map[string]struct{}, len(records))
	totalWeight := 0.0

	for i, r := range records {
		if r.ID <= 0 {
			return nil, fmt.Errorf("breed %q: id must be positive, got %d", r.Slug, r.ID)
		}
		if _, ok := c.byID[r.ID]; ok {
			return nil, fmt.Errorf("duplicate breed id %d", r.ID)
		}
		if _, ok := c.bySlug[r.Slug]; ok {
			return nil, fmt.Errorf("duplicate breed slug %q", r.Slug)
		}
		if _, ok := names[r.Name]; ok {
			return nil, fmt.Errorf("duplicate breed name %q", r.Name)
		}

		c.byID[r.ID] = i
		c.bySlug[r.Slug] = i
		names[r.Name] = struct{}{}
		totalWeight += r.SelectionWeight
	}

	if math.Abs(totalWeight-1.0) > 1e-9 {
		return nil, fmt.Errorf("selection weights must sum to 1.0, got %v", totalWeight)
	}

	return c, nil
}

// All returns every record in stable table order.
func (c *Catalog) All() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// ByID looks a record up by its integer id.
func (c *Catalog) ByID(id int) (Record, error) {
	i, ok := c.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return c.records[i], nil
}

// BySlug looks a record up by its stable slug key.
func (c *Catalog) BySlug(slug string) (Record, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Record{}, ErrNotFound
	}
	return c.records[i], nil
}

// Cattle returns the cattle partition of the table.
func (c *Catalog) Cattle() []Record {
	return c.bySpecies(SpeciesCattle)
}

// Buffalo returns the buffalo partition of the table.
func (c *Catalog) Buffalo() []Record {
	return c.bySpecies(SpeciesBuffalo)
}

// Len returns the number of records in the table.
func (c *Catalog) Len() int {
	return len(c.records)
}

func (c *Catalog) bySpecies(s Species) []Record {
	out := make([]Record, 0, len(c.records))
	for _, r := range c.records {
		if r.Species == s {
			out = append(out, r)
		}
	}
	return out
}
