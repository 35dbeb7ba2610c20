package descriptors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StinkyLord/cbuild-idkit/internal/model"
)

const sample = `
components:
  - {vendor: ARM, class: CMSIS, group: CORE, version: 5.6.0}
  - class: Device
    group: Startup
    variant: C Startup
conditions:
  - {tag: require, class: CMSIS, group: CORE}
packages:
  - {vendor: ARM, name: CMSIS, version: 5.9.0}
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	require.Equal(t, 4, f.Len())
	require.Equal(t, model.Component{Vendor: "ARM", Class: "CMSIS", Group: "CORE", Version: "5.6.0"}, f.Components[0])
	require.Equal(t, "C Startup", f.Components[1].Variant)
	require.Equal(t, "require", f.Conditions[0].Tag)
	require.Equal(t, model.Package{Vendor: "ARM", Name: "CMSIS", Version: "5.9.0"}, f.Packages[0])
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyFile)

	_, err = Decode(strings.NewReader("components: []\n"))
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("components:\n  - {clas: CMSIS}\n"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmptyFile)
}

func TestDecode_MaxInstancesKeptAsWritten(t *testing.T) {
	f, err := Decode(strings.NewReader("components:\n  - {class: Device, group: Timer, maxInstances: \"+4\"}\n"))
	require.NoError(t, err)
	require.Equal(t, "+4", f.Components[0].MaxInstances)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descriptors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.Components, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
