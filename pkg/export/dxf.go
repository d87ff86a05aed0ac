package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
)

// ExportDXF writes the plan as a DXF drawing with one closed polyline
// per polygon, split across BLOCKS, LOTS, and BUILDABLE layers.
func ExportDXF(path string, plan *subdiv.PlanResult) error {
	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BLOCKS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("adding BLOCKS layer: %w", err)
	}
	for _, block := range plan.Blocks {
		if err := addPolyline(d, block.Polygon); err != nil {
			return err
		}
	}

	if _, err := d.AddLayer("LOTS", color.Green, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("adding LOTS layer: %w", err)
	}
	for _, block := range plan.Blocks {
		for _, lot := range block.Lots {
			if err := addPolyline(d, lot.Polygon); err != nil {
				return err
			}
		}
	}

	if _, err := d.AddLayer("BUILDABLE", color.Red, table.LT_DASHDOT, true); err != nil {
		return fmt.Errorf("adding BUILDABLE layer: %w", err)
	}
	for _, block := range plan.Blocks {
		for _, lot := range block.Lots {
			if lot.Buildable == nil {
				continue
			}
			if err := addPolyline(d, *lot.Buildable); err != nil {
				return err
			}
		}
	}

	return d.SaveAs(path)
}

func addPolyline(d *drawing.Drawing, p geo.Polygon) error {
	if p.IsEmpty() {
		return nil
	}
	vertices := make([][]float64, 0, p.Len())
	for _, v := range p.Vertices {
		vertices = append(vertices, []float64{v.X, v.Y})
	}
	if _, err := d.LwPolyline(true, vertices...); err != nil {
		return fmt.Errorf("writing polyline: %w", err)
	}
	return nil
}
