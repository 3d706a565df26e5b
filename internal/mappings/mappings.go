package mappings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultColor is used for categories without a palette entry.
const DefaultColor = "grey"

// Tables holds the static lookup data injected into the pipeline. Values are
// read-only once constructed.
type Tables struct {
	Categories   map[string]string `yaml:"categories"`
	Descriptions map[string]string `yaml:"descriptions"`
	Colors       map[string]string `yaml:"colors"`
}

// Default returns the built-in lookup tables.
func Default() *Tables {
	return &Tables{
		Categories: map[string]string{
			"groceries":             "groceries",
			"dining out":            "restaurants",
			"rent":                  "housing",
			"utilities":             "housing",
			"gym":                   "health & fitness",
			"doctor":                "health & fitness",
			"entertainment":         "education & entertainment",
			"subscriptions":         "education & entertainment",
			"personal":              "personal",
			"transportation":        "transportation",
			"food & drink":          "restaurants",
			"gas":                   "transportation",
			"shopping":              "personal",
			"bills & utilities":     "housing",
			"health & wellness":     "health & fitness",
			"education":             "education & entertainment",
			"travel":                "health & fitness",
			"professional services": "housing",
			"automotive":            "transportation",
			"home":                  "housing",
			"other":                 "other",
		},
		Descriptions: map[string]string{
			"netflix":                "subscription",
			"spotify":                "subscription",
			"gym":                    "health & fitness",
			"uber":                   "transportation",
			"amazon":                 "shopping",
			"linkedin pre":           "linkedin premium",
			"linkedin pre p":         "linkedin premium",
			"dd":                     "doordash dashpass",
			"doordash dashpass":      "doordash dashpass",
			"sq baltimore":           "baltimore county revenue authority",
			"bltmr cnty rev authori": "baltimore county revenue authority",
			"agi ins":                "agi insurance",
			"audible":                "audible",
			"chatgpt subscription":   "chatgpt subscription",
			"hlu -u":                 "hlu -u",
			"leetcode.com":           "leetcode.com",
			"microsoft offer":        "microsoft offer",
			"mojang":                 "mojang",
			"openai subscr":          "openai subscription",
			"raidbots premium hrlm":  "raidbots premium hrlm",
			"streamlabs prime":       "streamlabs prime",
		},
		Colors: map[string]string{
			"personal":                  "skyblue",
			"health & fitness":          "green",
			"transportation":            "orange",
			"housing":                   "red",
			"education & entertainment": "purple",
			"groceries":                 "brown",
			"restaurants":               "brown",
			"other":                     "grey",
		},
	}
}

// Load reads lookup tables from a YAML file. Sections missing from the file
// keep their built-in defaults; keys are lower-cased.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mappings: %w", err)
	}

	var file Tables
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing mappings: %w", err)
	}

	tables := Default()
	if file.Categories != nil {
		tables.Categories = normalizeKeys(file.Categories)
	}
	if file.Descriptions != nil {
		tables.Descriptions = normalizeKeys(file.Descriptions)
	}
	if file.Colors != nil {
		tables.Colors = normalizeKeys(file.Colors)
	}
	return tables, nil
}

// LoadOrDefault loads path when it is set and falls back to the defaults otherwise.
func LoadOrDefault(path string) (*Tables, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the tables to a YAML file.
func Save(path string, t *Tables) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling mappings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing mappings: %w", err)
	}
	return nil
}

// Category maps a lower-cased raw category; a lookup miss returns the input.
func (t *Tables) Category(raw string) string {
	if mapped, ok := t.Categories[raw]; ok {
		return mapped
	}
	return raw
}

// Description standardizes a description by exact match; a miss returns the input.
func (t *Tables) Description(raw string) string {
	if mapped, ok := t.Descriptions[raw]; ok {
		return mapped
	}
	return raw
}

// Color returns the display color of a category.
func (t *Tables) Color(category string) string {
	if c, ok := t.Colors[category]; ok {
		return c
	}
	return DefaultColor
}

func normalizeKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
