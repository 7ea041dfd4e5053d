package advisor

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultVariant is used when a request or an override names no variant.
const DefaultVariant = "Normal"

// DefaultOverrideTier is the tier name given to overrides whose name is absent.
const DefaultOverrideTier = "Custom"

//go:embed targets.yaml
var builtinTargets []byte

// Threshold is the target value for one skill.
type Threshold struct {
	Skill string  `json:"skill"`
	Value float64 `json:"value"`
}

// Thresholds keeps skills in the order they were declared.
type Thresholds []Threshold

// UnmarshalYAML decodes a skill mapping while keeping its key order.
func (t *Thresholds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: thresholds must be a mapping", node.Line)
	}

	out := make(Thresholds, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value float64
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("line %d: skill %q: %w", node.Content[i+1].Line, node.Content[i].Value, err)
		}
		out = append(out, Threshold{Skill: node.Content[i].Value, Value: value})
	}
	*t = out
	return nil
}

// Table maps role -> tier -> variant -> thresholds.
type Table map[string]map[string]map[string]Thresholds

// Lookup returns the thresholds for a role, tier and variant. When the variant
// is missing under a configured tier the Normal variant is returned with
// fallback set. ok is false when nothing is configured.
func (t Table) Lookup(role, tier, variant string) (thresholds Thresholds, fallback bool, ok bool) {
	variants := t[role][tier]
	if th, found := variants[variant]; found && len(th) > 0 {
		return th, false, true
	}
	if th, found := variants[DefaultVariant]; found && len(th) > 0 {
		return th, true, true
	}
	return nil, false, false
}

// Override is a user-defined target merged on top of the built-in table. A nil
// Name selects DefaultOverrideTier; an empty one is a tier of its own.
type Override struct {
	Role    string
	Name    *string
	Variant string
	Stats   map[string]float64
}

// WithOverrides returns a copy of t with the overrides applied in order.
// Later overrides win at the same key; unknown roles and tiers are created.
func (t Table) WithOverrides(overrides []Override) Table {
	if len(overrides) == 0 {
		return t
	}

	out := make(Table, len(t))
	for role, tiers := range t {
		out[role] = make(map[string]map[string]Thresholds, len(tiers))
		for tier, variants := range tiers {
			out[role][tier] = make(map[string]Thresholds, len(variants))
			for variant, th := range variants {
				out[role][tier][variant] = th
			}
		}
	}

	for _, o := range overrides {
		role := strings.ToLower(o.Role)
		name := DefaultOverrideTier
		if o.Name != nil {
			name = *o.Name
		}
		variant := o.Variant
		if variant == "" {
			variant = DefaultVariant
		}

		if out[role] == nil {
			out[role] = make(map[string]map[string]Thresholds)
		}
		if out[role][name] == nil {
			out[role][name] = make(map[string]Thresholds)
		}
		out[role][name][variant] = thresholdsFromStats(o.Stats)
	}
	return out
}

// thresholdsFromStats orders override skills by name. Stored stats carry no
// order of their own, so sorting keeps report details stable across requests.
func thresholdsFromStats(stats map[string]float64) Thresholds {
	skills := make([]string, 0, len(stats))
	for skill := range stats {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	out := make(Thresholds, 0, len(skills))
	for _, skill := range skills {
		out = append(out, Threshold{Skill: skill, Value: stats[skill]})
	}
	return out
}

// ParseTable decodes a YAML target table.
func ParseTable(data []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse target table: %w", err)
	}
	if table == nil {
		table = Table{}
	}
	return table, nil
}

// DefaultTable returns the built-in target table.
func DefaultTable() Table {
	table, err := ParseTable(builtinTargets)
	if err != nil {
		panic(err)
	}
	return table
}

// LoadTable reads a target table from path, or the built-in one when path is empty.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read target table: %w", err)
	}
	return ParseTable(data)
}
