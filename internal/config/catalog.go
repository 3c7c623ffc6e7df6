package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hunterline/internal/engine"
)

// CatalogFile is the YAML layout of a custom quest catalog. The category of
// each template comes from the list it appears in.
type CatalogFile struct {
	Physical     []TemplateFile `yaml:"physical"`
	Mental       []TemplateFile `yaml:"mental"`
	Intelligence []TemplateFile `yaml:"intelligence"`
}

type TemplateFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Difficulty  string `yaml:"difficulty"`
	Exp         int    `yaml:"exp"`
	Stat        string `yaml:"stat"`
	Value       int    `yaml:"value"`
}

// LoadCatalog returns the configured catalog, or the built-in one when no
// catalog file is set.
func (c *Config) LoadCatalog() (engine.Catalog, error) {
	if c.Catalog == "" {
		return engine.DefaultCatalog(), nil
	}
	return ReadCatalog(c.Catalog)
}

func ReadCatalog(path string) (engine.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return engine.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(b)
}

func ParseCatalog(b []byte) (engine.Catalog, error) {
	var f CatalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return engine.Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	var cat engine.Catalog
	var err error
	if cat.Physical, err = convertPool(engine.CategoryPhysical, f.Physical); err != nil {
		return engine.Catalog{}, err
	}
	if cat.Mental, err = convertPool(engine.CategoryMental, f.Mental); err != nil {
		return engine.Catalog{}, err
	}
	if cat.Intelligence, err = convertPool(engine.CategoryIntelligence, f.Intelligence); err != nil {
		return engine.Catalog{}, err
	}
	if cat.Size() == 0 {
		return engine.Catalog{}, fmt.Errorf("catalog has no quests")
	}
	if err := cat.Validate(); err != nil {
		return engine.Catalog{}, err
	}
	return cat, nil
}

func convertPool(cat engine.Category, in []TemplateFile) ([]engine.Template, error) {
	out := make([]engine.Template, 0, len(in))
	for i, t := range in {
		diff, ok := engine.ParseDifficulty(t.Difficulty)
		if !ok {
			return nil, fmt.Errorf("catalog %s[%d] %q: invalid difficulty %q", cat, i, t.Title, t.Difficulty)
		}
		stat, ok := engine.ParseStat(t.Stat)
		if !ok {
			return nil, fmt.Errorf("catalog %s[%d] %q: invalid stat %q", cat, i, t.Title, t.Stat)
		}
		out = append(out, engine.Template{
			Title:       t.Title,
			Description: t.Description,
			Category:    cat,
			Difficulty:  diff,
			Exp:         t.Exp,
			StatBonus:   engine.StatBonus{Type: stat, Value: t.Value},
		})
	}
	return out, nil
}
