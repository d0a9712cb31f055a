package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogReferenceData(t *testing.T) {
	c := Default()

	require.Len(t, c.Materials, 4)
	require.Len(t, c.Machines, 3)
	require.Len(t, c.Regions, 4)

	abs, ok := c.Material("abs-gen")
	require.True(t, ok)
	assert.Equal(t, 1.04, abs.Density)
	assert.Equal(t, 2.85, abs.PricePerKg)
	assert.Equal(t, 0.08, abs.ThermalDiffusivity)
	assert.Equal(t, 230.0, abs.MeltTemp)
	assert.Equal(t, 60.0, abs.MoldTemp)
	assert.Equal(t, 90.0, abs.EjectTemp)

	engel, ok := c.Machine("m-900")
	require.True(t, ok)
	assert.Equal(t, "Engel", engel.Manufacturer)
	assert.Equal(t, 140.0, engel.HourlyRate)
	assert.Equal(t, 9000.0, engel.ClampingForce)

	sea, ok := c.Region("sea")
	require.True(t, ok)
	assert.Equal(t, 0.7, sea.Multiplier)
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestResolveFallbackUsesFirstEntry(t *testing.T) {
	c := Default()

	m, err := c.ResolveMaterial("does-not-exist", LookupFallback)
	require.NoError(t, err)
	assert.Equal(t, "abs-gen", m.ID)

	mc, err := c.ResolveMachine("", LookupFallback)
	require.NoError(t, err)
	assert.Equal(t, "m-50", mc.ID)
}

func TestResolveStrictReportsUnknownIDs(t *testing.T) {
	c := Default()

	_, err := c.ResolveMaterial("does-not-exist", LookupStrict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMaterialID))

	_, err = c.ResolveMachine("m-9999", LookupStrict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMachineID))

	m, err := c.ResolveMaterial("pc-gen", LookupStrict)
	require.NoError(t, err)
	assert.Equal(t, "Polycarbonate (Generic)", m.Name)
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte("materials: []\nmachines: []\n"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = Parse([]byte(`materials: [{id: a, density: 1}]`))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	doc := `
materials:
  - {id: a, density: 1}
  - {id: a, density: 2}
machines:
  - {id: m, hourlyRate: 10}
`
	_, err := Parse([]byte(doc))
	assert.ErrorIs(t, err, errDuplicateID)
}

func TestParseAcceptsJSON(t *testing.T) {
	doc := `{"materials":[{"id":"x","density":0.95,"pricePerKg":1.2}],"machines":[{"id":"y","hourlyRate":50,"clampingForce":1000}]}`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 0.95, c.Materials[0].Density)
	assert.Equal(t, 1000.0, c.Machines[0].ClampingForce)
	assert.Empty(t, c.Regions)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("materials: [{id: pp, density: 0.9}]\nmachines: [{id: m1, hourlyRate: 20}]\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pp", c.Materials[0].ID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLookupModeString(t *testing.T) {
	assert.Equal(t, "fallback", LookupFallback.String())
	assert.Equal(t, "strict", LookupStrict.String())
}
