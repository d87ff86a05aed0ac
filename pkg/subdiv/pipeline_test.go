package subdiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/gridopt"
)

func fixedGridConfig() gridopt.Config {
	// Spacing and angle pinned to a single point so the search is a
	// formality and the block layout is known in advance.
	return gridopt.Config{
		SpacingMin:           25,
		SpacingMax:           25,
		AngleMin:             0,
		AngleMax:             0,
		PopulationSize:       6,
		Generations:          2,
		CrossoverProb:        0.9,
		MutationProb:         0.2,
		Eta:                  15,
		GoodBlockRatio:       0.75,
		FragmentedBlockRatio: 0.25,
		Seed:                 11,
		Workers:              1,
	}
}

func testLotConfig() Config {
	return Config{
		MinLotWidth:            15,
		MaxLotWidth:            30,
		TargetLotWidth:         20,
		DeviationPenaltyWeight: 1,
		SetbackDistance:        2,
	}
}

func TestBuildPlanFixedGrid(t *testing.T) {
	plan, err := BuildPlan(squareSite(100), geo.Polygon{}, fixedGridConfig(), testLotConfig())
	require.NoError(t, err)
	require.True(t, plan.Viable())

	assert.InDelta(t, 25, plan.Spacing, 1e-9)
	assert.InDelta(t, 0, plan.Angle, 1e-9)
	assert.InDelta(t, 10000, plan.ResidentialArea, 1.0)
	assert.Zero(t, plan.Fragments)
	require.Len(t, plan.Blocks, 16)

	// A 25 m block with widths in [15, 30] holds exactly one lot.
	assert.Equal(t, 16, plan.LotCount)
	assert.Zero(t, plan.FallbackCount)
	assert.InDelta(t, 10000, plan.DevelopableArea, 1.0)
	assert.Zero(t, plan.ParkArea)
	assert.InDelta(t, plan.DevelopableArea, plan.LotArea, 1.0)

	for _, b := range plan.Blocks {
		require.Len(t, b.Lots, 1)
		lot := b.Lots[0]
		assert.InDelta(t, 25, lot.Width, 0.05)
		require.NotNil(t, lot.Buildable)
		// 2 m setback on a 25x25 block leaves a 21x21 footprint.
		assert.InDelta(t, 441, lot.Buildable.Area(), 1.0)
	}
}

func TestBuildPlanLotAreaNeverExceedsDevelopable(t *testing.T) {
	site := geo.NewPolygon(
		geo.Pt(0, 0), geo.Pt(140, 10), geo.Pt(150, 120), geo.Pt(60, 150), geo.Pt(-10, 80),
	)
	grid := fixedGridConfig()
	grid.SpacingMin, grid.SpacingMax = 20, 40
	grid.AngleMax = 90
	grid.Generations = 5

	plan, err := BuildPlan(site, geo.Polygon{}, grid, testLotConfig())
	require.NoError(t, err)
	assert.LessOrEqual(t, plan.LotArea, plan.DevelopableArea+1.0)
	assert.LessOrEqual(t, plan.ResidentialArea, site.Area()+1.0)
}

func TestBuildPlanDeterministic(t *testing.T) {
	site := geo.NewPolygon(
		geo.Pt(0, 0), geo.Pt(120, 0), geo.Pt(160, 90), geo.Pt(40, 140),
	)
	grid := fixedGridConfig()
	grid.SpacingMin, grid.SpacingMax = 20, 45
	grid.AngleMax = 90
	grid.Seed = 99

	a, err := BuildPlan(site, geo.Polygon{}, grid, testLotConfig())
	require.NoError(t, err)
	b, err := BuildPlan(site, geo.Polygon{}, grid, testLotConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Spacing, b.Spacing)
	assert.Equal(t, a.Angle, b.Angle)
	assert.Equal(t, a.ResidentialArea, b.ResidentialArea)
	assert.Equal(t, a.LotCount, b.LotCount)
	require.Equal(t, len(a.Blocks), len(b.Blocks))
	for i := range a.Blocks {
		assert.Equal(t, a.Blocks[i].ID, b.Blocks[i].ID)
		assert.Equal(t, a.Blocks[i].Area, b.Blocks[i].Area)
		require.Equal(t, len(a.Blocks[i].Lots), len(b.Blocks[i].Lots))
		for j := range a.Blocks[i].Lots {
			assert.Equal(t, a.Blocks[i].Lots[j].ID, b.Blocks[i].Lots[j].ID)
		}
	}
}

func TestBuildPlanParallelMatchesSerial(t *testing.T) {
	grid := fixedGridConfig()
	serial, err := BuildPlan(squareSite(100), geo.Polygon{}, grid, testLotConfig())
	require.NoError(t, err)

	grid.Workers = 4
	parallel, err := BuildPlan(squareSite(100), geo.Polygon{}, grid, testLotConfig())
	require.NoError(t, err)

	assert.Equal(t, serial.LotCount, parallel.LotCount)
	assert.Equal(t, serial.LotArea, parallel.LotArea)
	assert.Equal(t, serial.FallbackCount, parallel.FallbackCount)
	require.Equal(t, len(serial.Blocks), len(parallel.Blocks))
	for i := range serial.Blocks {
		assert.Equal(t, serial.Blocks[i].Area, parallel.Blocks[i].Area)
		require.Equal(t, len(serial.Blocks[i].Lots), len(parallel.Blocks[i].Lots))
		for j := range serial.Blocks[i].Lots {
			assert.Equal(t, serial.Blocks[i].Lots[j].ID, parallel.Blocks[i].Lots[j].ID)
		}
	}
}

func TestBuildPlanRejectsBadConfig(t *testing.T) {
	grid := fixedGridConfig()
	grid.SpacingMin = -1
	_, err := BuildPlan(squareSite(100), geo.Polygon{}, grid, testLotConfig())
	assert.Error(t, err)
}

func TestBuildPlanNotViableOnTinySite(t *testing.T) {
	// A 5 m site cannot hold a single 25 m cell above the good-block
	// ratio, so residential area stays zero.
	plan, err := BuildPlan(squareSite(5), geo.Polygon{}, fixedGridConfig(), testLotConfig())
	require.NoError(t, err)
	assert.False(t, plan.Viable())
	assert.Empty(t, plan.Blocks)
}
