// Package contextname splits context entries of the form
// <project>[.<build-type>][+<target-type>] into their parts. The build type
// and target type may appear in either order.
package contextname

import (
	"strings"

	"github.com/StinkyLord/cbuild-idkit/internal/grammar"
	"github.com/StinkyLord/cbuild-idkit/internal/model"
)

// Parser parses and formats context entries.
type Parser struct {
	build  byte
	target byte
}

// New returns a Parser for g. A nil grammar selects grammar.Default().
func New(g *grammar.Grammar) *Parser {
	if g == nil {
		g = grammar.Default()
	}
	return &Parser{build: g.BuildTypePrefix, target: g.TargetTypePrefix}
}

// Parse extracts project, build type and target type from entry. Each part
// is extracted independently; a missing separator leaves its part empty and
// an entry without separators is all project.
func (p *Parser) Parse(entry string) model.ContextName {
	return model.ContextName{
		Project:    p.project(entry),
		BuildType:  field(entry, p.build, p.target),
		TargetType: field(entry, p.target, p.build),
	}
}

// project is everything before the first separator of either kind.
func (p *Parser) project(entry string) string {
	if i := strings.IndexAny(entry, string([]byte{p.build, p.target})); i >= 0 {
		return entry[:i]
	}
	return entry
}

// field returns the text after the first start separator, up to the next
// stop separator following it.
func field(entry string, start, stop byte) string {
	i := strings.IndexByte(entry, start)
	if i < 0 {
		return ""
	}
	rest := entry[i+1:]
	if j := strings.IndexByte(rest, stop); j >= 0 {
		return rest[:j]
	}
	return rest
}

// Format reassembles a context entry in canonical order. Empty parts and
// their separators are left out.
func (p *Parser) Format(c model.ContextName) string {
	var b strings.Builder
	b.WriteString(c.Project)
	if c.BuildType != "" {
		b.WriteByte(p.build)
		b.WriteString(c.BuildType)
	}
	if c.TargetType != "" {
		b.WriteByte(p.target)
		b.WriteString(c.TargetType)
	}
	return b.String()
}
