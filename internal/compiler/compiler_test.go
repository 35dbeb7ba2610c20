package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExpand(t *testing.T) {
	e := New(nil, nil)

	tests := []struct {
		id   string
		want Spec
	}{
		{"GCC", Spec{Name: "GCC", Min: "0.0.0"}},
		{"GCC@", Spec{Name: "GCC", Min: "0.0.0"}},
		{"AC6@6.18.0", Spec{Name: "AC6", Min: "6.18.0", Max: "6.18.0"}},
		{"AC6@>=6.18.0", Spec{Name: "AC6", Min: "6.18.0"}},
		{"", Spec{Min: "0.0.0"}},
		// the version clause starts after the last "@"
		{"GCC@1@2", Spec{Name: "GCC@1", Min: "2", Max: "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Expand(tt.id))
		})
	}
}

func TestCompatible(t *testing.T) {
	e := New(nil, nil)

	tests := []struct {
		first, second string
		want          bool
	}{
		{"GCC@>=6.0.0", "GCC@8.0.0", true},
		{"GCC@8.0.0", "GCC@>=6.0.0", true},
		{"GCC@6.0.0", "GCC@8.0.0", false},
		{"GCC@>=8.0.0", "GCC@6.0.0", false},
		{"GCC@>=6.0.0", "GCC@>=8.0.0", true},
		{"GCC", "GCC@8.0.0", true},
		{"AC6@1.0.0", "GCC@1.0.0", false},
		{"AC6", "GCC", false},
		{"", "GCC@1.0.0", true},
		{"GCC@1.0.0", "", true},
		{"", "", true},
		// pre-releases sort before their release at any segment count
		{"GCC@>=1.0.0-beta", "GCC@1.0.0", true},
		{"GCC@>=1.0.0-beta", "GCC@1.0.0.0", true},
		{"GCC@>=6.18.0-rc1", "GCC@6.18.0.1", true},
		{"GCC@>=6.18.0.1", "GCC@6.18.0-rc1", false},
		{"GCC@>=6.18", "GCC@6.18.0.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.first+"_"+tt.second, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Compatible(tt.first, tt.second))
		})
	}
}

func TestIntersect(t *testing.T) {
	e := New(nil, nil)

	tests := []struct {
		first, second string
		want          Intersection
	}{
		{"GCC@>=6.0.0", "GCC@>=8.0.0", Intersection{Value, "GCC@>=8.0.0"}},
		{"GCC@>=8.0.0", "GCC@>=6.0.0", Intersection{Value, "GCC@>=8.0.0"}},
		{"GCC@6.0.0", "GCC@6.0.0", Intersection{Value, "GCC@6.0.0"}},
		{"GCC@>=6.0.0", "GCC@8.0.0", Intersection{Value, "GCC@8.0.0"}},
		{"GCC", "GCC", Intersection{Value, "GCC"}},
		{"GCC", "GCC@>=6.0.0", Intersection{Value, "GCC@>=6.0.0"}},
		{"", "GCC@>=6.0.0", Intersection{Value, "GCC@>=6.0.0"}},
		{"GCC@6.0.0", "", Intersection{Value, "GCC@6.0.0"}},
		{"AC6@1.0.0", "GCC@1.0.0", Intersection{Outcome: Empty}},
		{"GCC@6.0.0", "GCC@8.0.0", Intersection{Outcome: Empty}},
		{"", "", Intersection{Outcome: Empty}},
	}
	for _, tt := range tests {
		t.Run(tt.first+"_"+tt.second, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Intersect(tt.first, tt.second))
		})
	}
}

// "6.0" and "6.0.0" compare equal, so the lower bound keeps the first
// spelling while the upper bound comes from the pinned id. The two ends
// differ textually and no id can express the result.
func TestIntersect_UnrepresentableBoundedRange(t *testing.T) {
	e := New(nil, nil)

	got := e.Intersect("GCC@>=6.0", "GCC@6.0.0")
	require.Equal(t, Unrepresentable, got.Outcome)
	require.Empty(t, got.ID)
}

type reverseComparator struct{}

func (reverseComparator) Compare(a, b string) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	}
	return 0
}

func TestEngine_UsesSuppliedComparator(t *testing.T) {
	e := New(nil, reverseComparator{})
	// Under the reversed order 6.0.0 sorts after 8.0.0.
	assert.Equal(t, Intersection{Value, "GCC@>=6.0.0"}, e.Intersect("GCC@>=6.0.0", "GCC@>=8.0.0"))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "value", Value.String())
	assert.Equal(t, "unrepresentable", Unrepresentable.String())
}

func TestIntersect_Properties(t *testing.T) {
	e := New(nil, nil)
	versions := []string{
		"1.0.0", "1.0.0.0", "1.0.0-beta", "6.0", "6.0.0", "6.18", "6.18.0",
		"6.18.0-rc1", "6.18.0.1", "8.2.1", "10.3.1", "10.3.1-1",
	}
	idGen := rapid.Custom(func(t *rapid.T) string {
		name := rapid.SampledFrom([]string{"AC6", "GCC", "IAR", "CLANG"}).Draw(t, "name")
		v := rapid.SampledFrom(versions).Draw(t, "version")
		switch rapid.IntRange(0, 2).Draw(t, "kind") {
		case 0:
			return name
		case 1:
			return name + "@" + v
		default:
			return name + "@>=" + v
		}
	})

	rapid.Check(t, func(t *rapid.T) {
		a := idGen.Draw(t, "a")
		b := idGen.Draw(t, "b")

		if e.Compatible(a, b) != e.Compatible(b, a) {
			t.Fatalf("Compatible(%q, %q) is not symmetric", a, b)
		}

		got := e.Intersect(a, b)
		if !e.Compatible(a, b) {
			if got.Outcome != Empty {
				t.Fatalf("Intersect(%q, %q) = %+v for incompatible ids", a, b, got)
			}
			return
		}
		switch got.Outcome {
		case Unrepresentable:
			// Only a range with textually distinct ends has no id, and
			// that needs a pinned version on at least one side.
			if e.Expand(a).Max == "" && e.Expand(b).Max == "" {
				t.Fatalf("Intersect(%q, %q) is unrepresentable for two open ranges", a, b)
			}
			if got.ID != "" {
				t.Fatalf("Intersect(%q, %q) = %+v carries an id", a, b, got)
			}
			return
		case Empty:
			t.Fatalf("Intersect(%q, %q) is empty for compatible ids", a, b)
		}
		// The intersection is compatible with both inputs.
		if !e.Compatible(got.ID, a) || !e.Compatible(got.ID, b) {
			t.Fatalf("Intersect(%q, %q) = %q is not compatible with its inputs", a, b, got.ID)
		}
		// Intersecting again with either input changes nothing.
		if again := e.Intersect(got.ID, a); again.ID != got.ID {
			t.Fatalf("Intersect(%q, %q) = %q, want %q", got.ID, a, again.ID, got.ID)
		}
	})
}
