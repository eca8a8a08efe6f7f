package catalogfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulprint/internal/matching"
)

const validCatalog = `[
  {
    "id": "kyoto",
    "name": "Kyoto",
    "country": "Japan",
    "active": true,
    "dimensions": {"restorative": 70, "cultural": 95, "cultural_sensory": null},
    "primary_dimensions": ["cultural"],
    "avg_daily_cost": 140,
    "flight_hours": 11.5
  },
  {
    "id": "bali",
    "name": "Bali",
    "active": true,
    "dimensions": {"restorative": 90, "wellness": 85}
  }
]`

func TestParse_Valid(t *testing.T) {
	catalog, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	assert.Equal(t, "kyoto", catalog[0].ID)
	assert.Equal(t, []matching.Dimension{matching.Cultural}, catalog[0].PrimaryDimensions)

	v, ok := catalog[0].Dimensions.Get(matching.Cultural)
	assert.True(t, ok)
	assert.Equal(t, 95.0, v)

	_, ok = catalog[0].Dimensions.Get(matching.CulturalSensory)
	assert.False(t, ok, "null stays unknown")
	require.NotNil(t, catalog[0].FlightHours)
	assert.Equal(t, 11.5, *catalog[0].FlightHours)
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing name":      `[{"id": "x"}]`,
		"score over 100":    `[{"id": "x", "name": "X", "dimensions": {"nature": 120}}]`,
		"unknown dimension": `[{"id": "x", "name": "X", "dimensions": {"nightlife": 50}}]`,
		"bad primary":       `[{"id": "x", "name": "X", "primary_dimensions": ["beaches"]}]`,
		"negative cost":     `[{"id": "x", "name": "X", "avg_daily_cost": -1}]`,
		"not an array":      `{"id": "x", "name": "X"}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestParse_DuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`[{"id": "x", "name": "A"}, {"id": "x", "name": "B"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate destination id "x"`)
}

func TestParse_EmptyCatalog(t *testing.T) {
	catalog, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, catalog, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
