// Package model holds the read-only view of an architecture model exported
// by the host modeling tool: a tree of components, each carrying a set of
// dynamically named stereotype properties with no static schema.
package model

import (
	"strconv"
	"strings"
)

// Kind tags the runtime type of a stereotype property value.
type Kind int

const (
	// KindUnrepresentable marks values the host model exposes but this
	// system cannot interpret (nulls, nested objects, arrays). It is the
	// zero Kind so a missing property reads as unrepresentable.
	KindUnrepresentable Kind = iota
	KindNumber
	KindString
	KindBool
)

// Value is a tagged stereotype property value.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bool bool
}

func Number(v float64) Value { return Value{Kind: KindNumber, Num: v} }
func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Boolean(b bool) Value   { return Value{Kind: KindBool, Bool: b} }

// Float coerces the value to a float64 for aggregation. Numeric strings
// parse; anything else, including parse failures, coerces to zero.
func (v Value) Float() float64 {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Text renders the value as a string. Unrepresentable values render empty.
func (v Value) Text() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Properties is an insertion-ordered mapping from property name to Value.
type Properties struct {
	names []string
	vals  map[string]Value
}

// Set stores a value under name, preserving first-insertion order.
func (p *Properties) Set(name string, v Value) {
	if p.vals == nil {
		p.vals = make(map[string]Value)
	}
	if _, ok := p.vals[name]; !ok {
		p.names = append(p.names, name)
	}
	p.vals[name] = v
}

// Get returns the value stored under name.
func (p *Properties) Get(name string) (Value, bool) {
	v, ok := p.vals[name]
	return v, ok
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

func (p *Properties) Len() int { return len(p.names) }

// Component is a node in the architecture tree. Sub is nil for leaves,
// including components whose sub-architecture could not be read.
type Component struct {
	Name  string
	Props Properties
	Sub   *Architecture
}

// Architecture is an ordered list of sibling components.
type Architecture struct {
	Components []*Component
}

// Model is a named architecture root.
type Model struct {
	Name string
	Root *Architecture
}
