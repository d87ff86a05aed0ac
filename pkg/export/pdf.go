package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/zok213/RealEstate-sub001/pkg/geo"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the plan as a plat summary: a plan-view drawing of
// all blocks and lots, followed by a statistics page.
func ExportPDF(path string, plan *subdiv.PlanResult) error {
	if len(plan.Blocks) == 0 {
		return fmt.Errorf("no blocks to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, plan)

	pdf.AddPage()
	renderSummaryPage(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// renderPlanPage draws every block and lot scaled into the page.
func renderPlanPage(pdf *fpdf.Fpdf, plan *subdiv.PlanResult) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Subdivision plan: grid %.1f m @ %.1f deg", plan.Spacing, plan.Angle)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	minP, maxP := planBounds(plan)
	spanX := maxP.X - minP.X
	spanY := maxP.Y - minP.Y
	if spanX < 1e-9 || spanY < 1e-9 {
		return
	}
	drawW := pageWidth - marginLeft - marginRight
	drawH := pageHeight - drawAreaTop - marginBottom
	scale := drawW / spanX
	if s := drawH / spanY; s < scale {
		scale = s
	}
	// PDF Y grows downward; flip the plan's north axis.
	toPage := func(p geo.Point2D) fpdf.PointType {
		return fpdf.PointType{
			X: marginLeft + (p.X-minP.X)*scale,
			Y: drawAreaTop + (maxP.Y-p.Y)*scale,
		}
	}

	for _, block := range plan.Blocks {
		if block.Classification == subdiv.ClassPark {
			pdf.SetDrawColor(76, 175, 80) // green
		} else {
			pdf.SetDrawColor(33, 33, 33)
		}
		pdf.SetLineWidth(0.4)
		drawPolygon(pdf, block.Polygon, toPage)

		pdf.SetDrawColor(33, 150, 243) // blue
		pdf.SetLineWidth(0.2)
		for _, lot := range block.Lots {
			drawPolygon(pdf, lot.Polygon, toPage)
		}
	}
}

// renderSummaryPage prints the aggregate plan statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, plan *subdiv.PlanResult) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Summary", "", 0, "L", false, 0, "")

	lines := []string{
		fmt.Sprintf("Grid spacing: %.2f m, rotation: %.2f deg", plan.Spacing, plan.Angle),
		fmt.Sprintf("Blocks: %d (developable area %.0f m2, park area %.0f m2)",
			len(plan.Blocks), plan.DevelopableArea, plan.ParkArea),
		fmt.Sprintf("Lots: %d, total lot area %.0f m2", plan.LotCount, plan.LotArea),
		fmt.Sprintf("Fallback subdivisions: %d", plan.FallbackCount),
	}
	pdf.SetFont("Helvetica", "", 11)
	y := drawAreaTop
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 7, line, "", 0, "L", false, 0, "")
		y += 8
	}
}

func drawPolygon(pdf *fpdf.Fpdf, p geo.Polygon, toPage func(geo.Point2D) fpdf.PointType) {
	if p.IsEmpty() {
		return
	}
	points := make([]fpdf.PointType, 0, p.Len())
	for _, v := range p.Vertices {
		points = append(points, toPage(v))
	}
	pdf.Polygon(points, "D")
}

func planBounds(plan *subdiv.PlanResult) (geo.Point2D, geo.Point2D) {
	first := true
	var minP, maxP geo.Point2D
	for _, block := range plan.Blocks {
		lo, hi := block.Polygon.BoundingBox()
		if first {
			minP, maxP = lo, hi
			first = false
			continue
		}
		if lo.X < minP.X {
			minP.X = lo.X
		}
		if lo.Y < minP.Y {
			minP.Y = lo.Y
		}
		if hi.X > maxP.X {
			maxP.X = hi.X
		}
		if hi.Y > maxP.Y {
			maxP.Y = hi.Y
		}
	}
	return minP, maxP
}
