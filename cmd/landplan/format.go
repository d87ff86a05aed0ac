package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zok213/RealEstate-sub001/pkg/subdiv"
	"github.com/zok213/RealEstate-sub001/pkg/validation"
)

// printValidationReport writes a human-readable validation report to stderr.
func printValidationReport(report *validation.Report) {
	w := os.Stderr
	if report.Valid {
		fmt.Fprintln(w, "✓ project is valid")
	} else {
		fmt.Fprintln(w, "✗ project has errors")
	}
	for _, r := range report.Errors {
		fmt.Fprintf(w, "  error   %-24s %s", r.Field, r.Message)
		if r.Expected != "" {
			fmt.Fprintf(w, " (expected %s)", r.Expected)
		}
		fmt.Fprintln(w)
	}
	for _, r := range report.Warnings {
		fmt.Fprintf(w, "  warning %-24s %s\n", r.Field, r.Message)
	}
	for _, r := range report.Info {
		fmt.Fprintf(w, "  info    %-24s %s\n", r.Field, r.Message)
	}
	fmt.Fprintln(w, report.Summary)
}

// printPlanSummary writes a short plan overview.
func printPlanSummary(w io.Writer, plan *subdiv.PlanResult) {
	fmt.Fprintf(w, "grid: spacing %.2f m, angle %.2f°\n", plan.Spacing, plan.Angle)
	fmt.Fprintf(w, "blocks: %d (developable %.0f m², park %.0f m²)\n",
		len(plan.Blocks), plan.DevelopableArea, plan.ParkArea)
	fmt.Fprintf(w, "lots: %d covering %.0f m²\n", plan.LotCount, plan.LotArea)
	if plan.FallbackCount > 0 {
		fmt.Fprintf(w, "uniform fallback used on %d block(s)\n", plan.FallbackCount)
	}
}
