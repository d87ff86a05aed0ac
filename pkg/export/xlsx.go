package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
)

const scheduleSheet = "Lot Schedule"

// ExportXLSX writes a lot schedule workbook: one row per lot with its
// block, dimensions, and buildable area, followed by plan totals.
func ExportXLSX(path string, plan *subdiv.PlanResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headers := []string{"Block", "Classification", "Lot ID", "Width (m)", "Area (m²)", "Buildable Area (m²)"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(scheduleSheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	row := 2
	for _, block := range plan.Blocks {
		if len(block.Lots) == 0 {
			if err := writeRow(f, row, []any{block.ID, string(block.Classification), "", "", block.Area, ""}); err != nil {
				return err
			}
			row++
			continue
		}
		for _, lot := range block.Lots {
			buildable := any("")
			if lot.Buildable != nil {
				buildable = lot.Buildable.Area()
			}
			if err := writeRow(f, row, []any{block.ID, string(block.Classification), lot.ID, lot.Width, lot.Area, buildable}); err != nil {
				return err
			}
			row++
		}
	}

	row++
	totals := [][]any{
		{"Total lots", plan.LotCount},
		{"Lot area (m²)", plan.LotArea},
		{"Developable area (m²)", plan.DevelopableArea},
		{"Park area (m²)", plan.ParkArea},
	}
	for _, t := range totals {
		if err := writeRow(f, row, t); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("addressing cell: %w", err)
		}
		if err := f.SetCellValue(scheduleSheet, cell, v); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}
