// Package grammar holds the delimiter table shared by the identifier codec,
// the compiler id engine and the context entry parser.
package grammar

import "strings"

// Grammar is the set of delimiters that make up the identifier, compiler and
// context entry syntaxes. A Grammar is built once with Default and passed by
// pointer; nothing mutates it afterwards.
type Grammar struct {
	// Component identifiers: Vendor::Class&Bundle:Group:Sub&Variant@Version
	VendorSuffix  string
	BundlePrefix  string
	GroupPrefix   string
	SubPrefix     string
	VariantPrefix string
	VersionPrefix string

	// Pack identifiers: Vendor::Name@Version
	PackVendorSuffix  string
	PackVersionPrefix string

	// Compiler ids: Name@Version or Name@>=Version
	CompilerVersionPrefix string
	MinVersionMarker      string
	AnyVersion            string

	// Context entries: Project.BuildType+TargetType
	BuildTypePrefix  byte
	TargetTypePrefix byte
}

// Default returns the grammar used by csolution project files.
func Default() *Grammar {
	return &Grammar{
		VendorSuffix:  "::",
		BundlePrefix:  "&",
		GroupPrefix:   ":",
		SubPrefix:     ":",
		VariantPrefix: "&",
		VersionPrefix: "@",

		PackVendorSuffix:  "::",
		PackVersionPrefix: "@",

		CompilerVersionPrefix: "@",
		MinVersionMarker:      ">=",
		AnyVersion:            "0.0.0",

		BuildTypePrefix:  '.',
		TargetTypePrefix: '+',
	}
}

// SegmentSeparator is the single character that separates the class, group
// and sub segments of a component identifier.
func (g *Grammar) SegmentSeparator() string {
	return g.GroupPrefix
}

// CutLast slices s around the last instance of sep. Suffix attributes such
// as a version or a variant are cut this way, so "X@1@2" has version "2".
func CutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
