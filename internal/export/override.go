package export

import (
	"sort"
	"strconv"
	"strings"

	"compliance-service/internal/model"
)

// OverrideKind enumerates the record locations an override may target.
type OverrideKind int

const (
	OverrideSensory OverrideKind = iota
	OverridePhysical
	OverrideMicro
	OverrideHeavyMetal
)

// Override is a single caller-supplied field edit, validated at parse time.
// Sensory overrides address one of the four fixed attributes by Field; the
// indexed kinds address a list entry by Index.
type Override struct {
	Kind  OverrideKind
	Field string
	Index int
	Value string
}

var sensoryFields = map[string]bool{
	"color":   true,
	"smell":   true,
	"taste":   true,
	"texture": true,
}

// ParseOverrides converts the wire-level dotted-path map into the closed
// override set. Unrecognized prefixes, unknown sensory fields and malformed
// or negative indices are dropped silently; callers can only replace
// existing scalar leaf values, never corrupt the record structure.
func ParseOverrides(raw map[string]string) []Override {
	if len(raw) == 0 {
		return nil
	}

	// Map order is random; sort for a stable result.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	overrides := make([]Override, 0, len(raw))
	for _, key := range keys {
		prefix, rest, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}

		switch prefix {
		case "sensory":
			if sensoryFields[rest] {
				overrides = append(overrides, Override{Kind: OverrideSensory, Field: rest, Value: raw[key]})
			}
		case "physical", "micro", "heavy":
			idx, err := strconv.Atoi(rest)
			if err != nil || idx < 0 {
				continue
			}
			kind := OverridePhysical
			switch prefix {
			case "micro":
				kind = OverrideMicro
			case "heavy":
				kind = OverrideHeavyMetal
			}
			overrides = append(overrides, Override{Kind: kind, Index: idx, Value: raw[key]})
		}
	}
	return overrides
}

// Apply produces the effective product record: a deep copy of the base with
// the overrides applied. Out-of-range indices are no-ops. An empty override
// set yields a copy structurally equal to the input.
func Apply(p *model.Product, overrides []Override) *model.Product {
	cp := p.Clone()
	for _, ov := range overrides {
		switch ov.Kind {
		case OverrideSensory:
			switch ov.Field {
			case "color":
				cp.SensoryIndicators.Color = ov.Value
			case "smell":
				cp.SensoryIndicators.Smell = ov.Value
			case "taste":
				cp.SensoryIndicators.Taste = ov.Value
			case "texture":
				cp.SensoryIndicators.Texture = ov.Value
			}
		case OverridePhysical:
			if ov.Index < len(cp.PhysicalChemical) {
				cp.PhysicalChemical[ov.Index].Value = ov.Value
			}
		case OverrideMicro:
			if ov.Index < len(cp.Microbiological) {
				cp.Microbiological[ov.Index].Limit = ov.Value
			}
		case OverrideHeavyMetal:
			if ov.Index < len(cp.HeavyMetals) {
				cp.HeavyMetals[ov.Index].Limit = ov.Value
			}
		}
	}
	return cp
}
