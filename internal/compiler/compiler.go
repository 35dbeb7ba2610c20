// Package compiler parses toolchain compiler ids of the form
//
//	<name>            any version
//	<name>@<version>  exactly that version
//	<name>@>=<version> that version or later
//
// and computes whether two ids are compatible and what their intersection is.
package compiler

import (
	"strings"

	"github.com/StinkyLord/cbuild-idkit/internal/grammar"
	"github.com/StinkyLord/cbuild-idkit/internal/version"
)

// Spec is an expanded compiler id. An empty Max means no upper bound.
type Spec struct {
	Name string `json:"name" yaml:"name"`
	Min  string `json:"min" yaml:"min"`
	Max  string `json:"max,omitempty" yaml:"max,omitempty"`
}

// Outcome classifies the result of an intersection.
type Outcome int

const (
	// Empty means nothing was produced: both ids were empty or they are
	// incompatible.
	Empty Outcome = iota
	// Value means the intersection is expressible as a compiler id.
	Value
	// Unrepresentable means the ranges overlap but the overlap is a bounded
	// range with distinct ends, which the id grammar cannot express.
	Unrepresentable
)

func (o Outcome) String() string {
	switch o {
	case Value:
		return "value"
	case Unrepresentable:
		return "unrepresentable"
	default:
		return "empty"
	}
}

// MarshalText renders the outcome by name in JSON and YAML output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Intersection is the result of Engine.Intersect. ID is only set when
// Outcome is Value.
type Intersection struct {
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	ID      string  `json:"id,omitempty" yaml:"id,omitempty"`
}

// Engine expands and intersects compiler ids.
type Engine struct {
	g   *grammar.Grammar
	cmp version.Comparator
}

// New returns an Engine. Nil arguments select grammar.Default() and
// version.Semantic.
func New(g *grammar.Grammar, cmp version.Comparator) *Engine {
	if g == nil {
		g = grammar.Default()
	}
	if cmp == nil {
		cmp = version.Semantic{}
	}
	return &Engine{g: g, cmp: cmp}
}

// Expand splits a compiler id into name, minimum and maximum version.
// A missing version clause yields the "any version" minimum and no maximum.
func (e *Engine) Expand(id string) Spec {
	name, clause, _ := grammar.CutLast(id, e.g.CompilerVersionPrefix)
	switch {
	case clause == "":
		return Spec{Name: name, Min: e.g.AnyVersion}
	case strings.HasPrefix(clause, e.g.MinVersionMarker):
		return Spec{Name: name, Min: strings.TrimPrefix(clause, e.g.MinVersionMarker)}
	default:
		return Spec{Name: name, Min: clause, Max: clause}
	}
}

// Compatible reports whether two compiler ids can be satisfied at once.
// An empty id is compatible with anything. Ids naming different compilers
// never are.
func (e *Engine) Compatible(first, second string) bool {
	if first == "" || second == "" {
		return true
	}
	a, b := e.Expand(first), e.Expand(second)
	return e.compatible(a, b)
}

func (e *Engine) compatible(a, b Spec) bool {
	if a.Name != b.Name {
		return false
	}
	if a.Max != "" && b.Min != "" && e.cmp.Compare(a.Max, b.Min) < 0 {
		return false
	}
	if b.Max != "" && a.Min != "" && e.cmp.Compare(b.Max, a.Min) < 0 {
		return false
	}
	return true
}

// Intersect returns the compiler id satisfying both first and second.
//
// The id grammar can express "any", "at least X" and "exactly X". An overlap
// bounded on both sides with distinct ends is reported as Unrepresentable.
// On ties between equal versions the first id's spelling is kept.
func (e *Engine) Intersect(first, second string) Intersection {
	if (first == "" && second == "") || !e.Compatible(first, second) {
		return Intersection{Outcome: Empty}
	}
	a, b := e.Expand(first), e.Expand(second)

	if a.Max == "" {
		a.Max = b.Max
	}
	if b.Max == "" {
		b.Max = a.Max
	}

	name := a.Name
	if name == "" {
		name = b.Name
	}
	lo := a.Min
	if e.cmp.Compare(a.Min, b.Min) < 0 {
		lo = b.Min
	}
	hi := a.Max
	if e.cmp.Compare(a.Max, b.Max) > 0 {
		hi = b.Max
	}

	switch {
	case hi == "" && e.cmp.Compare(lo, e.g.AnyVersion) == 0:
		return Intersection{Outcome: Value, ID: name}
	case hi == "":
		return Intersection{Outcome: Value, ID: name + e.g.CompilerVersionPrefix + e.g.MinVersionMarker + lo}
	case lo == hi:
		return Intersection{Outcome: Value, ID: name + e.g.CompilerVersionPrefix + lo}
	default:
		return Intersection{Outcome: Unrepresentable}
	}
}
