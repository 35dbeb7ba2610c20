// Package identifier builds and decomposes component, condition and pack
// identifiers of the form
//
//	Vendor::Class&Bundle:Group:Sub&Variant@Version
//	Vendor::Name@Version
//
// Empty attributes contribute nothing to an identifier, including their
// delimiter: a component with class "X" and no bundle is "X", never "X&".
package identifier

import (
	"strings"

	"github.com/StinkyLord/cbuild-idkit/internal/grammar"
	"github.com/StinkyLord/cbuild-idkit/internal/model"
)

// Attribute names produced by Decompose.
const (
	AttrVendor  = "Cvendor"
	AttrClass   = "Cclass"
	AttrBundle  = "Cbundle"
	AttrGroup   = "Cgroup"
	AttrSub     = "Csub"
	AttrVariant = "Cvariant"
	AttrVersion = "Cversion"
)

// Element is one (prefix, value) pair of an identifier. The prefix is only
// emitted together with a non-empty value.
type Element struct {
	Prefix string
	Value  string
}

// Construct concatenates prefix+value for every element with a non-empty
// value, in order.
func Construct(elements ...Element) string {
	var b strings.Builder
	for _, e := range elements {
		if e.Value == "" {
			continue
		}
		b.WriteString(e.Prefix)
		b.WriteString(e.Value)
	}
	return b.String()
}

// Codec builds and decomposes identifiers with a fixed grammar.
type Codec struct {
	g *grammar.Grammar
}

// New returns a Codec for g. A nil grammar selects grammar.Default().
func New(g *grammar.Grammar) *Codec {
	if g == nil {
		g = grammar.Default()
	}
	return &Codec{g: g}
}

// vendor returns the vendor with its separator appended, or "" when unset.
func (c *Codec) vendor(v, suffix string) string {
	if v == "" {
		return ""
	}
	return v + suffix
}

// ComponentID returns the fully specified component identifier.
func (c *Codec) ComponentID(d model.ComponentDescriptor) string {
	if d == nil {
		return ""
	}
	return Construct(
		Element{"", c.vendor(d.VendorName(), c.g.VendorSuffix)},
		Element{"", d.ClassName()},
		Element{c.g.BundlePrefix, d.BundleName()},
		Element{c.g.GroupPrefix, d.GroupName()},
		Element{c.g.SubPrefix, d.SubName()},
		Element{c.g.VariantPrefix, d.VariantName()},
		Element{c.g.VersionPrefix, d.VersionString()},
	)
}

// ConditionID returns the condition tag followed by a space and the
// component identifier of the condition's attributes.
func (c *Codec) ConditionID(d model.ConditionDescriptor) string {
	if d == nil {
		return ""
	}
	return d.TagName() + " " + c.ComponentID(d)
}

// ComponentAggregateID returns the identifier of the aggregate a component
// belongs to: vendor, class, bundle, group and sub, without variant and
// version.
func (c *Codec) ComponentAggregateID(d model.ComponentDescriptor) string {
	if d == nil {
		return ""
	}
	return Construct(
		Element{"", c.vendor(d.VendorName(), c.g.VendorSuffix)},
		Element{"", d.ClassName()},
		Element{c.g.BundlePrefix, d.BundleName()},
		Element{c.g.GroupPrefix, d.GroupName()},
		Element{c.g.SubPrefix, d.SubName()},
	)
}

// PartialComponentID returns the component identifier without vendor and
// version.
func (c *Codec) PartialComponentID(d model.ComponentDescriptor) string {
	if d == nil {
		return ""
	}
	return Construct(
		Element{"", d.ClassName()},
		Element{c.g.BundlePrefix, d.BundleName()},
		Element{c.g.GroupPrefix, d.GroupName()},
		Element{c.g.SubPrefix, d.SubName()},
		Element{c.g.VariantPrefix, d.VariantName()},
	)
}

// PackageID returns the fully specified pack identifier.
func (c *Codec) PackageID(d model.PackageDescriptor) string {
	if d == nil {
		return ""
	}
	return c.PackageIDFromParts(d.VendorName(), d.PackName(), d.VersionString())
}

// PackageIDFromParts returns the pack identifier for the given attributes.
func (c *Codec) PackageIDFromParts(vendor, name, version string) string {
	return Construct(
		Element{"", c.vendor(vendor, c.g.PackVendorSuffix)},
		Element{"", name},
		Element{c.g.PackVersionPrefix, version},
	)
}
