// Package export serializes plan results for downstream consumers:
// GeoJSON for GIS tools, DXF for CAD, XLSX lot schedules, and a PDF
// plat summary.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
)

// Geometry is a GeoJSON polygon geometry.
type Geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Feature is a GeoJSON feature.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// BuildFeatureCollection converts a plan into GeoJSON features: one
// feature per block and one per lot, with classification, area, and
// width metadata in the properties.
func BuildFeatureCollection(plan *subdiv.PlanResult) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection"}
	for _, block := range plan.Blocks {
		fc.Features = append(fc.Features, Feature{
			Type:     "Feature",
			Geometry: polygonGeometry(block.Polygon),
			Properties: map[string]any{
				"kind":           "block",
				"id":             block.ID,
				"classification": string(block.Classification),
				"area_m2":        block.Area,
				"quality_ratio":  block.QualityRatio,
			},
		})
		for _, lot := range block.Lots {
			props := map[string]any{
				"kind":     "lot",
				"id":       lot.ID,
				"block_id": block.ID,
				"width_m":  lot.Width,
				"area_m2":  lot.Area,
			}
			if lot.Buildable != nil {
				props["buildable_area_m2"] = lot.Buildable.Area()
			}
			fc.Features = append(fc.Features, Feature{
				Type:       "Feature",
				Geometry:   polygonGeometry(lot.Polygon),
				Properties: props,
			})
		}
	}
	return fc
}

// ExportGeoJSON writes the plan as an indented GeoJSON file.
func ExportGeoJSON(path string, plan *subdiv.PlanResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating geojson file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildFeatureCollection(plan)); err != nil {
		return fmt.Errorf("encoding geojson: %w", err)
	}
	return nil
}

// polygonGeometry converts a polygon to a closed GeoJSON ring.
func polygonGeometry(p geo.Polygon) Geometry {
	ring := make([][]float64, 0, p.Len()+1)
	for _, v := range p.Vertices {
		ring = append(ring, []float64{v.X, v.Y})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return Geometry{Type: "Polygon", Coordinates: [][][]float64{ring}}
}
