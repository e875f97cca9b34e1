package timeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Set is a sorted set of completed step ids
type Set []int

// NewSet builds a set from arbitrary ids, dropping duplicates
func NewSet(ids ...int) Set {
	s := slices.Clone(ids)
	slices.Sort(s)
	return Set(slices.Compact(s))
}

// Contains reports whether id is in the set
func (s Set) Contains(id int) bool {
	_, found := slices.BinarySearch(s, id)
	return found
}

// Max returns the largest id, false for an empty set
func (s Set) Max() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Toggle returns the set with id added (completed=true) or removed.
// The second value reports whether the set actually changed; repeating
// the same toggle is a no-op.
func Toggle(s Set, id int, completed bool) (Set, bool) {
	i, found := slices.BinarySearch(s, id)
	switch {
	case completed && !found:
		return slices.Insert(slices.Clone(s), i, id), true
	case !completed && found:
		return slices.Delete(slices.Clone(s), i, i+1), true
	default:
		return s, false
	}
}

// CompletionPercentage returns 100*|completed|/total, 0 when total is 0.
// Ids outside the catalog are counted too.
func CompletionPercentage(completed Set, total int) float64 {
	return percent(len(completed), total)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

// AnnotatedStep is a catalog step with the caller's completion flag
type AnnotatedStep struct {
	Step
	Completed bool `json:"completed"`
}

// Annotate marks every catalog step as completed or not
func Annotate(c *Catalog, completed Set) []AnnotatedStep {
	out := make([]AnnotatedStep, 0, c.Total())
	for _, s := range c.Steps() {
		out = append(out, AnnotatedStep{Step: s, Completed: completed.Contains(s.ID)})
	}
	return out
}

// CategoryGroup содержит шаги одной категории и статистику по ним
type CategoryGroup struct {
	Category             string          `json:"-"`
	Steps                []AnnotatedStep `json:"steps"`
	Total                int             `json:"total"`
	Completed            int             `json:"completed"`
	CompletionPercentage float64         `json:"completion_percentage"`
}

// CategoryGroups is ordered by first appearance of the category in the catalog.
// It marshals to a JSON object whose keys keep that order.
type CategoryGroups []CategoryGroup

// MarshalJSON implements json.Marshaler
func (g CategoryGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal category name: %w", err)
		}
		val, err := json.Marshal(group)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal category %q: %w", group.Category, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the object form produced by MarshalJSON, keeping key order
func (g *CategoryGroups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read category groups: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category groups: expected object, got %v", tok)
	}

	out := CategoryGroups{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read category name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("category groups: unexpected key %v", tok)
		}

		group := CategoryGroup{Category: name}
		if err := dec.Decode(&group); err != nil {
			return fmt.Errorf("failed to decode category %q: %w", name, err)
		}
		out = append(out, group)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read category groups: %w", err)
	}

	*g = out
	return nil
}

// Get returns the group for a category name
func (g CategoryGroups) Get(category string) (CategoryGroup, bool) {
	for _, group := range g {
		if group.Category == category {
			return group, true
		}
	}
	return CategoryGroup{}, false
}

// GroupByCategory partitions the catalog by category, keeping catalog order
func GroupByCategory(c *Catalog, completed Set) CategoryGroups {
	var groups CategoryGroups
	pos := make(map[string]int)

	for _, s := range Annotate(c, completed) {
		i, ok := pos[s.Category]
		if !ok {
			i = len(groups)
			pos[s.Category] = i
			groups = append(groups, CategoryGroup{Category: s.Category})
		}
		groups[i].Steps = append(groups[i].Steps, s)
		groups[i].Total++
		if s.Completed {
			groups[i].Completed++
		}
	}

	for i := range groups {
		groups[i].CompletionPercentage = percent(groups[i].Completed, groups[i].Total)
	}
	return groups
}

// NextAvailable returns up to limit incomplete steps whose dependencies are all completed.
// limit <= 0 means no limit.
func NextAvailable(c *Catalog, completed Set, limit int) []Step {
	var out []Step
	for _, s := range c.Steps() {
		if completed.Contains(s.ID) {
			continue
		}
		ready := true
		for _, dep := range s.Dependencies {
			if !completed.Contains(dep) {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
