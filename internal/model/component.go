// Package model defines the descriptor values the identifier codec reads and
// the structured results the parsers produce.
package model

// ComponentDescriptor exposes the named attributes of a component-like
// entity. The codec only reads these values, it never interprets them.
type ComponentDescriptor interface {
	VendorName() string
	ClassName() string
	BundleName() string
	GroupName() string
	SubName() string
	VariantName() string
	VersionString() string
}

// ConditionDescriptor is a component-like entity carrying an element tag
// such as "require", "accept" or "deny".
type ConditionDescriptor interface {
	ComponentDescriptor
	TagName() string
}

// PackageDescriptor exposes the attributes of a software pack.
type PackageDescriptor interface {
	VendorName() string
	PackName() string
	VersionString() string
}

// Component is a plain ComponentDescriptor, typically loaded from a
// descriptor file or built from command-line flags.
type Component struct {
	Vendor  string `yaml:"vendor,omitempty" json:"vendor,omitempty"`
	Class   string `yaml:"class,omitempty" json:"class,omitempty"`
	Bundle  string `yaml:"bundle,omitempty" json:"bundle,omitempty"`
	Group   string `yaml:"group,omitempty" json:"group,omitempty"`
	Sub     string `yaml:"sub,omitempty" json:"sub,omitempty"`
	Variant string `yaml:"variant,omitempty" json:"variant,omitempty"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Tag     string `yaml:"tag,omitempty" json:"tag,omitempty"` // conditions only

	// MaxInstances is kept as written in the descriptor; see
	// projutil.StringToInt.
	MaxInstances string `yaml:"maxInstances,omitempty" json:"maxInstances,omitempty"`
}

func (c Component) VendorName() string    { return c.Vendor }
func (c Component) ClassName() string     { return c.Class }
func (c Component) BundleName() string    { return c.Bundle }
func (c Component) GroupName() string     { return c.Group }
func (c Component) SubName() string       { return c.Sub }
func (c Component) VariantName() string   { return c.Variant }
func (c Component) VersionString() string { return c.Version }
func (c Component) TagName() string       { return c.Tag }

// Package is a plain PackageDescriptor.
type Package struct {
	Vendor  string `yaml:"vendor,omitempty" json:"vendor,omitempty"`
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

func (p Package) VendorName() string    { return p.Vendor }
func (p Package) PackName() string      { return p.Name }
func (p Package) VersionString() string { return p.Version }

// ContextName is the decomposition of a context entry
// <project>[.<build-type>][+<target-type>].
type ContextName struct {
	Project    string `yaml:"project" json:"project"`
	BuildType  string `yaml:"buildType" json:"buildType"`
	TargetType string `yaml:"targetType" json:"targetType"`
}
