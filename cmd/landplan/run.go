package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zok213/RealEstate-sub001/pkg/export"
	"github.com/zok213/RealEstate-sub001/pkg/spec"
	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
	"github.com/zok213/RealEstate-sub001/pkg/validation"
)

// loadAndValidate loads the project and runs configuration validation.
func loadAndValidate(projectPath string) (*spec.Project, *validation.Report, error) {
	project, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	return project, validation.ValidateProject(project), nil
}

func runValidate(projectPath string) error {
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	printValidationReport(report)
	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

// solve runs the full pipeline for a validated project.
func solve(projectPath string) (*subdiv.PlanResult, error) {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return nil, fmt.Errorf("project has validation errors")
	}

	plan, err := subdiv.BuildPlan(
		project.SitePolygon(),
		project.ExclusionPolygon(),
		project.Params.GridConfig(),
		project.Params.SubdivConfig(),
	)
	if err != nil {
		return nil, err
	}
	if !plan.Viable() {
		fmt.Fprintln(os.Stderr, "warning: no viable layout; every candidate grid was empty or fragmented")
	}
	return plan, nil
}

func runSolve(projectPath string) error {
	plan, err := solve(projectPath)
	if err != nil {
		return err
	}
	printPlanSummary(os.Stderr, plan)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func runExport(projectPath, format, out string) error {
	plan, err := solve(projectPath)
	if err != nil {
		return err
	}
	if out == "" {
		out = filepath.Join(projectPath, "plan."+format)
	}

	switch format {
	case "geojson":
		err = export.ExportGeoJSON(out, plan)
	case "dxf":
		err = export.ExportDXF(out, plan)
	case "xlsx":
		err = export.ExportXLSX(out, plan)
	case "pdf":
		err = export.ExportPDF(out, plan)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", out)
	return nil
}
