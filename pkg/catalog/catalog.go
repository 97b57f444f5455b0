// Package catalog holds the compiled-in reference dataset of crop and seed
// profiles. The data is read-only; every accessor returns a copy.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agriadvisor/agriadvisor-go/pkg/models"
)

// Set names one of the profile collections
type Set string

const (
	SetCrops Set = "crops"
	SetSeeds Set = "seeds"
	SetAll   Set = "all"
)

// Catalog is the immutable reference dataset
type Catalog struct {
	crops   []models.CropProfile
	seeds   []models.CropProfile
	compat  map[models.CropID]models.Compatibility
	regions map[string]struct{}
}

// Default is the catalog built from the compiled-in tables
var Default = New()

// New builds a catalog from the compiled-in tables
func New() *Catalog {
	c := &Catalog{
		crops:   crops,
		seeds:   seeds,
		compat:  compatibility,
		regions: make(map[string]struct{}),
	}
	for _, p := range c.AllProfiles() {
		for _, r := range p.Regions {
			c.regions[normalizeRegion(r)] = struct{}{}
		}
	}
	return c
}

// Crops returns the state-level crop profiles in declared order
func (c *Catalog) Crops() []models.CropProfile {
	return cloneProfiles(c.crops)
}

// Seeds returns the climate-zone seed profiles in declared order
func (c *Catalog) Seeds() []models.CropProfile {
	return cloneProfiles(c.seeds)
}

// AllProfiles returns crops followed by seeds
func (c *Catalog) AllProfiles() []models.CropProfile {
	all := make([]models.CropProfile, 0, len(c.crops)+len(c.seeds))
	all = append(all, cloneProfiles(c.crops)...)
	return append(all, cloneProfiles(c.seeds)...)
}

// Profiles returns the named set
func (c *Catalog) Profiles(set Set) ([]models.CropProfile, error) {
	switch set {
	case SetCrops:
		return c.Crops(), nil
	case SetSeeds:
		return c.Seeds(), nil
	case SetAll, "":
		return c.AllProfiles(), nil
	default:
		return nil, fmt.Errorf("unknown profile set: %s", set)
	}
}

// Lookup returns the first profile with the given ID, searching crops then seeds
func (c *Catalog) Lookup(id models.CropID) (models.CropProfile, bool) {
	for _, set := range [][]models.CropProfile{c.crops, c.seeds} {
		for _, p := range set {
			if p.ID == id {
				return cloneProfiles([]models.CropProfile{p})[0], true
			}
		}
	}
	return models.CropProfile{}, false
}

// Compatibility returns the categorical suitability record of a crop
func (c *Catalog) Compatibility(id models.CropID) (models.Compatibility, bool) {
	rec, ok := c.compat[id]
	return rec, ok
}

// KnownRegion reports whether any profile lists the region
func (c *Catalog) KnownRegion(region string) bool {
	_, ok := c.regions[normalizeRegion(region)]
	return ok
}

// Regions returns every known region, sorted
func (c *Catalog) Regions() []string {
	out := make([]string, 0, len(c.regions))
	for r := range c.regions {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

func normalizeRegion(r string) string {
	return strings.ToLower(strings.TrimSpace(r))
}

func cloneProfiles(in []models.CropProfile) []models.CropProfile {
	out := make([]models.CropProfile, len(in))
	for i, p := range in {
		p.Varieties = append([]models.Variety(nil), p.Varieties...)
		p.Regions = append([]string(nil), p.Regions...)
		out[i] = p
	}
	return out
}
