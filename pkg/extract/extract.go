// Package extract walks an architecture tree and groups components by
// their occurrence number, the business key shared by physical instances
// of the same design.
package extract

import (
	"sort"
	"strings"

	"github.com/sysarch/reportgen/pkg/model"
)

// PartNumberProperty is the exact stereotype property name carrying the
// secondary part-number attribute.
const PartNumberProperty = "PartNumber"

// Member is one component instance inside an occurrence group. Its
// remaining stereotype properties are kept verbatim under sanitized names.
type Member struct {
	Name       string
	PartNumber string
	Props      model.Properties
}

// OccurrenceGroup collects all components, anywhere in the tree, that
// share one occurrence-number key.
type OccurrenceGroup struct {
	Key        string
	PartNumber string
	Members    []Member
}

// Groups extracts occurrence groups from the tree under root, sorted by
// key (lexicographic). Components without a non-empty occurrence-number
// property are excluded. Within a group the first non-empty part number
// wins.
func Groups(root *model.Architecture) []OccurrenceGroup {
	byKey := make(map[string]*OccurrenceGroup)

	walk(root, func(c *model.Component) {
		key, member := classify(c)
		if key == "" {
			return
		}
		g, ok := byKey[key]
		if !ok {
			g = &OccurrenceGroup{Key: key}
			byKey[key] = g
		}
		g.Members = append(g.Members, member)
		if g.PartNumber == "" {
			g.PartNumber = member.PartNumber
		}
	})

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]OccurrenceGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, *byKey[k])
	}
	return groups
}

// walk visits every component depth-first. A nil sub-architecture is a
// leaf.
func walk(arch *model.Architecture, visit func(*model.Component)) {
	if arch == nil {
		return
	}
	for _, c := range arch.Components {
		visit(c)
		walk(c.Sub, visit)
	}
}

func classify(c *model.Component) (string, Member) {
	m := Member{Name: c.Name}
	var key string
	for _, name := range c.Props.Names() {
		v, _ := c.Props.Get(name)
		switch {
		case IsOccurrenceName(name):
			if s := strings.TrimSpace(v.Text()); s != "" {
				key = s
			}
		case name == PartNumberProperty:
			m.PartNumber = strings.TrimSpace(v.Text())
		default:
			m.Props.Set(SanitizeName(name), v)
		}
	}
	return key, m
}

// IsOccurrenceName reports whether a property name carries an occurrence
// number. Both the correct spelling and the historical misspelling are in
// live use, so both match, case-insensitively.
func IsOccurrenceName(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "occurrencenumber") || strings.Contains(n, "occurancenumber")
}

// SanitizeName maps a host-model property name to a safe identifier:
// runes outside [A-Za-z0-9_] become underscores, and a name that does not
// start with a letter or underscore gets a "p_" prefix.
func SanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" || !isIdentStart(rune(s[0])) {
		s = "p_" + s
	}
	return s
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
