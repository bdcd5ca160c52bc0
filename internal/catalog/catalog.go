package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/cookie-tycoon/internal/config"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Ingredient struct {
	Name     string  `yaml:"name" json:"name"`
	Unit     string  `yaml:"unit" json:"unit"`
	PriceMin float64 `yaml:"price_min" json:"price_min"`
	PriceMax float64 `yaml:"price_max" json:"price_max"`
}

// Recipe maps ingredient name to units needed for one cookie.
type Recipe struct {
	Name        string         `yaml:"name" json:"name"`
	Ingredients map[string]int `yaml:"ingredients" json:"ingredients"`
}

type Catalog struct {
	Version     int          `yaml:"version" json:"version"`
	Ingredients []Ingredient `yaml:"ingredients" json:"ingredients"`
	Recipe      Recipe       `yaml:"recipe" json:"recipe"`
}

// Default returns the embedded catalog.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) Validate() error {
	if len(c.Ingredients) == 0 {
		return errors.New("catalog has no ingredients")
	}
	seen := make(map[string]bool, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return errors.New("ingredient without a name")
		}
		if seen[ing.Name] {
			return fmt.Errorf("duplicate ingredient %s", ing.Name)
		}
		seen[ing.Name] = true
		if ing.PriceMin < 0 || ing.PriceMin > ing.PriceMax {
			return fmt.Errorf("ingredient %s has invalid price range %v..%v", ing.Name, ing.PriceMin, ing.PriceMax)
		}
	}
	if len(c.Recipe.Ingredients) == 0 {
		return errors.New("recipe has no ingredients")
	}
	for name, n := range c.Recipe.Ingredients {
		if !seen[name] {
			return fmt.Errorf("recipe uses unknown ingredient %s", name)
		}
		if n <= 0 {
			return fmt.Errorf("recipe amount for %s must be positive", name)
		}
	}
	return nil
}

// WithPrices applies config price overrides, matched case-insensitively.
func (c Catalog) WithPrices(cfg config.Config) Catalog {
	out := c
	out.Ingredients = append([]Ingredient(nil), c.Ingredients...)
	for i := range out.Ingredients {
		key := strings.ToLower(out.Ingredients[i].Name)
		if v, ok := cfg.PriceMin[key]; ok {
			out.Ingredients[i].PriceMin = v
		}
		if v, ok := cfg.PriceMax[key]; ok {
			out.Ingredients[i].PriceMax = v
		}
		if out.Ingredients[i].PriceMax < out.Ingredients[i].PriceMin {
			out.Ingredients[i].PriceMax = out.Ingredients[i].PriceMin
		}
	}
	return out
}

func (c Catalog) Ingredient(name string) (Ingredient, bool) {
	for _, ing := range c.Ingredients {
		if ing.Name == name {
			return ing, true
		}
	}
	return Ingredient{}, false
}

func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}

// RecipeNames lists recipe ingredients in a stable order.
func (r Recipe) RecipeNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for name := range r.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
