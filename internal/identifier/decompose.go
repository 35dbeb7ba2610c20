package identifier

import (
	"sort"
	"strings"

	"github.com/StinkyLord/cbuild-idkit/internal/grammar"
)

// VariantOwner records which segment of a component identifier carried the
// variant suffix.
type VariantOwner int

const (
	VariantNone  VariantOwner = iota // no variant in the identifier
	VariantGroup                     // Class:Group&Variant
	VariantSub                       // Class:Group:Sub&Variant
)

func (o VariantOwner) String() string {
	switch o {
	case VariantGroup:
		return "group"
	case VariantSub:
		return "sub"
	default:
		return "none"
	}
}

// MarshalText renders the owner by name in JSON and YAML output.
func (o VariantOwner) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Attributes maps attribute names (AttrClass, AttrVendor, ...) to values.
// Attributes that were never set are absent.
type Attributes map[string]string

// Get returns the value of name and whether it was set.
func (a Attributes) Get(name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}

// Names returns the set attribute names in sorted order.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Decomposition is the result of splitting a component identifier.
type Decomposition struct {
	Attributes   Attributes   `json:"attributes" yaml:"attributes"`
	VariantOwner VariantOwner `json:"variantOwner" yaml:"variantOwner"`

	// VariantConflict is set when both the group and the sub segment carry a
	// variant. The sub variant wins and the group variant is dropped.
	VariantConflict bool `json:"variantConflict,omitempty" yaml:"variantConflict,omitempty"`

	// GroupVariant holds the dropped group variant when VariantConflict is set.
	GroupVariant string `json:"groupVariant,omitempty" yaml:"groupVariant,omitempty"`
}

// Decompose splits a component identifier into its attributes. It never
// fails: missing delimiters simply leave the corresponding attributes unset.
//
// The vendor ends at the first "::". The version, bundle and variants are
// suffixes and start after the last delimiter of their kind. The
// colon-separated segments are positional: Class[&Bundle], Group[&Variant],
// Sub[&Variant]. Segments past the third are ignored.
func (c *Codec) Decompose(id string) Decomposition {
	d := Decomposition{Attributes: Attributes{}}

	rest := id
	if vendor, after, found := strings.Cut(rest, c.g.VendorSuffix); found {
		d.Attributes[AttrVendor] = vendor
		rest = after
	}
	if before, version, found := grammar.CutLast(rest, c.g.VersionPrefix); found {
		d.Attributes[AttrVersion] = version
		rest = before
	}
	if rest == "" {
		return d
	}

	segments := strings.SplitN(rest, c.g.SegmentSeparator(), 4)
	for i, s := range segments {
		switch i {
		case 0:
			class, bundle, found := grammar.CutLast(s, c.g.BundlePrefix)
			d.Attributes[AttrClass] = class
			if found && bundle != "" {
				d.Attributes[AttrBundle] = bundle
			}
		case 1:
			group, variant, found := grammar.CutLast(s, c.g.VariantPrefix)
			d.Attributes[AttrGroup] = group
			if found && variant != "" {
				d.Attributes[AttrVariant] = variant
				d.VariantOwner = VariantGroup
			}
		case 2:
			sub, variant, found := grammar.CutLast(s, c.g.VariantPrefix)
			d.Attributes[AttrSub] = sub
			if found && variant != "" {
				if d.VariantOwner == VariantGroup {
					d.VariantConflict = true
					d.GroupVariant = d.Attributes[AttrVariant]
				}
				d.Attributes[AttrVariant] = variant
				d.VariantOwner = VariantSub
			}
		}
	}
	return d
}

// ComponentAttributesFromID is Decompose returning only the attribute map.
func (c *Codec) ComponentAttributesFromID(id string) Attributes {
	return c.Decompose(id).Attributes
}
