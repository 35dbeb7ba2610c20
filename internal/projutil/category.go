// Package projutil holds small helpers used around identifier resolution:
// file categories, output types, integer parsing, uniqueness-preserving
// appends, shell command execution and compiler root lookup.
package projutil

import "path/filepath"

// FileCategory maps a category name to the file extensions that belong to it.
type FileCategory struct {
	Name       string
	Extensions []string
}

// CategoryOther is returned for files whose extension is not listed.
const CategoryOther = "other"

// KnownCategories is the built-in extension table. Extensions are matched
// case-sensitively: ".C" is C source while ".CC" is C++.
var KnownCategories = []FileCategory{
	{Name: "sourceC", Extensions: []string{".c", ".C"}},
	{Name: "sourceCpp", Extensions: []string{".cpp", ".c++", ".C++", ".cxx", ".cc", ".CC"}},
	{Name: "sourceAsm", Extensions: []string{".asm", ".s", ".S"}},
	{Name: "header", Extensions: []string{".h", ".hpp"}},
	{Name: "library", Extensions: []string{".a", ".lib"}},
	{Name: "object", Extensions: []string{".o"}},
	{Name: "linkerScript", Extensions: []string{".sct", ".scf", ".ld", ".icf"}},
	{Name: "doc", Extensions: []string{".txt", ".md", ".pdf", ".htm", ".html"}},
}

// Category returns the category of file according to its extension.
func Category(file string) string {
	ext := filepath.Ext(file)
	if ext == "" {
		return CategoryOther
	}
	for _, c := range KnownCategories {
		for _, e := range c.Extensions {
			if e == ext {
				return c.Name
			}
		}
	}
	return CategoryOther
}
