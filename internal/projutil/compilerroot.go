package projutil

import (
	"os"
	"path/filepath"
)

// CompilerRootEnv names the environment variable that points at the
// directory holding the toolchain configuration files.
const CompilerRootEnv = "CMSIS_COMPILER_ROOT"

// CompilerRoot returns the toolchain configuration directory: the value of
// CMSIS_COMPILER_ROOT, else the etc directory next to the executable's bin
// directory if it exists, else "". lookupEnv is usually os.LookupEnv and
// executable os.Executable.
func CompilerRoot(lookupEnv func(string) (string, bool), executable func() (string, error)) string {
	root, _ := lookupEnv(CompilerRootEnv)
	if root == "" && executable != nil {
		if exe, err := executable(); err == nil {
			candidate := filepath.Join(filepath.Dir(exe), "..", "etc")
			if info, err := os.Stat(candidate); err == nil && info.IsDir() {
				root = candidate
			}
		}
	}
	return NormalizeRoot(root)
}

// NormalizeRoot makes root absolute and clean with forward slashes. An empty
// root stays empty.
func NormalizeRoot(root string) string {
	if root == "" {
		return ""
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return filepath.ToSlash(filepath.Clean(root))
}
