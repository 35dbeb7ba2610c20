package projutil

import "strings"

// Output type names accepted by SetOutputType.
const (
	OutputTypeBin  = "bin"
	OutputTypeElf  = "elf"
	OutputTypeHex  = "hex"
	OutputTypeLib  = "lib"
	OutputTypeCmse = "cmse-lib"
)

// OutputType is one requested build output.
type OutputType struct {
	On       bool   `json:"on" yaml:"on"`
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`
}

// OutputTypes is the set of outputs a context produces.
type OutputTypes struct {
	Bin  OutputType `json:"bin" yaml:"bin"`
	Elf  OutputType `json:"elf" yaml:"elf"`
	Hex  OutputType `json:"hex" yaml:"hex"`
	Lib  OutputType `json:"lib" yaml:"lib"`
	Cmse OutputType `json:"cmse-lib" yaml:"cmse-lib"`
}

// SetOutputType switches on the output named typ and reports whether the
// name is known. Unknown names are ignored.
func (o *OutputTypes) SetOutputType(typ string) bool {
	switch typ {
	case OutputTypeBin:
		o.Bin.On = true
	case OutputTypeElf:
		o.Elf.On = true
	case OutputTypeHex:
		o.Hex.On = true
	case OutputTypeLib:
		o.Lib.On = true
	case OutputTypeCmse:
		o.Cmse.On = true
	default:
		return false
	}
	return true
}

// Affixes are the toolchain specific decorations of output file names.
type Affixes struct {
	ElfSuffix string `json:"elfSuffix" yaml:"elfSuffix"`
	LibPrefix string `json:"libPrefix" yaml:"libPrefix"`
	LibSuffix string `json:"libSuffix" yaml:"libSuffix"`
}

var (
	defaultAffixes = Affixes{ElfSuffix: ".elf", LibPrefix: "", LibSuffix: ".a"}

	toolchainAffixes = map[string]Affixes{
		"AC6": {ElfSuffix: ".axf", LibPrefix: "", LibSuffix: ".lib"},
		"GCC": {ElfSuffix: ".elf", LibPrefix: "lib", LibSuffix: ".a"},
		"IAR": {ElfSuffix: ".out", LibPrefix: "", LibSuffix: ".a"},
	}
)

// OutputAffixes returns the affixes for a compiler name or compiler id
// ("GCC", "AC6@>=6.18.0"). Unknown toolchains get the defaults.
func OutputAffixes(compiler string) Affixes {
	name, _, _ := strings.Cut(compiler, "@")
	if a, ok := toolchainAffixes[name]; ok {
		return a
	}
	return defaultAffixes
}
