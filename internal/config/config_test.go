package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// chdirTemp switches into an empty directory so no local config is found.
func chdirTemp(t *testing.T) {
	t.Helper()
	testChdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_ExplicitFile(t *testing.T) {
	chdirTemp(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nverbose: true\ncompiler_root: /opt/etc\n"), 0o644))

	cfg, used, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, Config{Format: "yaml", Verbose: true, CompilerRoot: "/opt/etc"}, cfg)
}

func TestLoad_LocalFile(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(LocalConfigFile, []byte("format: yaml\n"), 0o644))

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, LocalConfigFile, used)
	require.Equal(t, "yaml", cfg.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	chdirTemp(t)
	_, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CBUILD_IDKIT_FORMAT", "yaml")

	cfg, _, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, "yaml", cfg.Format)
}

func TestLoad_InvalidFormat(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CBUILD_IDKIT_FORMAT", "xml")

	_, _, err := Load(viper.New(), "")
	require.ErrorContains(t, err, "invalid format")
}

// testChdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
