package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/gridopt"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
)

func testPlan(t *testing.T) *subdiv.PlanResult {
	t.Helper()
	site := geo.NewPolygon(
		geo.Pt(0, 0), geo.Pt(100, 0), geo.Pt(100, 100), geo.Pt(0, 100),
	)
	grid := gridopt.Config{
		SpacingMin:           25,
		SpacingMax:           25,
		AngleMin:             0,
		AngleMax:             0,
		PopulationSize:       4,
		Generations:          1,
		CrossoverProb:        0.9,
		MutationProb:         0.2,
		Eta:                  15,
		GoodBlockRatio:       0.75,
		FragmentedBlockRatio: 0.25,
		Seed:                 3,
		Workers:              1,
	}
	cfg := subdiv.Config{
		MinLotWidth:            8,
		MaxLotWidth:            15,
		TargetLotWidth:         12,
		DeviationPenaltyWeight: 1,
		SetbackDistance:        1.5,
	}
	plan, err := subdiv.BuildPlan(site, geo.Polygon{}, grid, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Blocks)
	return plan
}

func TestBuildFeatureCollection(t *testing.T) {
	plan := testPlan(t)
	fc := BuildFeatureCollection(plan)

	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, len(plan.Blocks)+plan.LotCount)

	blocks, lots := 0, 0
	for _, f := range fc.Features {
		assert.Equal(t, "Feature", f.Type)
		assert.Equal(t, "Polygon", f.Geometry.Type)
		require.Len(t, f.Geometry.Coordinates, 1)
		ring := f.Geometry.Coordinates[0]
		require.GreaterOrEqual(t, len(ring), 4)
		assert.Equal(t, ring[0], ring[len(ring)-1], "ring must be closed")

		switch f.Properties["kind"] {
		case "block":
			blocks++
			assert.NotEmpty(t, f.Properties["classification"])
		case "lot":
			lots++
			assert.NotEmpty(t, f.Properties["block_id"])
			assert.Greater(t, f.Properties["width_m"].(float64), 0.0)
		default:
			t.Fatalf("unexpected feature kind %v", f.Properties["kind"])
		}
	}
	assert.Equal(t, len(plan.Blocks), blocks)
	assert.Equal(t, plan.LotCount, lots)
}

func TestExportGeoJSON(t *testing.T) {
	plan := testPlan(t)
	path := filepath.Join(t.TempDir(), "plan.geojson")
	require.NoError(t, ExportGeoJSON(path, plan))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var fc FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, len(plan.Blocks)+plan.LotCount)
}

func TestExportDXF(t *testing.T) {
	plan := testPlan(t)
	path := filepath.Join(t.TempDir(), "plan.dxf")
	require.NoError(t, ExportDXF(path, plan))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// One closed polyline per block and per lot, plus the buildable
	// footprints.
	count := strings.Count(string(data), "LWPOLYLINE")
	assert.GreaterOrEqual(t, count, len(plan.Blocks)+plan.LotCount)
}

func TestExportXLSX(t *testing.T) {
	plan := testPlan(t)
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	require.NoError(t, ExportXLSX(path, plan))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDF(t *testing.T) {
	plan := testPlan(t)
	path := filepath.Join(t.TempDir(), "plan.pdf")
	require.NoError(t, ExportPDF(path, plan))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDFEmptyPlan(t *testing.T) {
	plan := &subdiv.PlanResult{}
	path := filepath.Join(t.TempDir(), "empty.pdf")
	assert.Error(t, ExportPDF(path, plan))
}
