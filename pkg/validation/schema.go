package validation

import (
	"fmt"

	"github.com/zok213/RealEstate-sub001/pkg/spec"
)

// ValidateProject checks the project's configuration and site geometry.
// Errors block the run; warnings document auto-corrections the engine
// will apply (e.g. a target width outside the lot width bounds).
func ValidateProject(p *spec.Project) *Report {
	report := NewReport()
	validateSite(p, report)
	validateGridParams(&p.Params, report)
	validateLotParams(&p.Params, report)
	validateShapeParams(&p.Params, report)
	return report
}

func validateSite(p *spec.Project, report *Report) {
	site := p.SitePolygon()
	if site.Len() < 3 {
		report.AddError(Result{
			Field:    "site",
			Message:  fmt.Sprintf("site ring has %d distinct vertices", site.Len()),
			Expected: "at least 3",
		})
		return
	}
	if site.Area() < 1e-9 {
		report.AddError(Result{
			Field:   "site",
			Message: "site polygon has no area",
		})
	}
	if len(p.Exclusion) > 0 && p.ExclusionPolygon().IsEmpty() {
		report.AddWarning(Result{
			Field:   "exclusion",
			Message: "exclusion ring is degenerate and will be ignored",
		})
	}
}

func validateGridParams(p *spec.Params, report *Report) {
	if p.SpacingMin <= 0 {
		report.AddError(Result{
			Field:    "spacing_min",
			Message:  fmt.Sprintf("spacing_min is %g", p.SpacingMin),
			Expected: "> 0",
		})
	}
	if p.SpacingMax < p.SpacingMin {
		report.AddError(Result{
			Field:    "spacing_max",
			Message:  fmt.Sprintf("spacing range [%g, %g] is inverted", p.SpacingMin, p.SpacingMax),
			Expected: "spacing_max >= spacing_min",
		})
	}
	if p.AngleMax < p.AngleMin {
		report.AddError(Result{
			Field:    "angle_max",
			Message:  fmt.Sprintf("angle range [%g, %g] is inverted", p.AngleMin, p.AngleMax),
			Expected: "angle_max >= angle_min",
		})
	}
	if p.PopulationSize < 2 {
		report.AddError(Result{
			Field:    "population_size",
			Message:  fmt.Sprintf("population_size is %d", p.PopulationSize),
			Expected: ">= 2",
		})
	}
	if p.Generations < 1 {
		report.AddError(Result{
			Field:    "generations",
			Message:  fmt.Sprintf("generations is %d", p.Generations),
			Expected: ">= 1",
		})
	}
	checkProbability(report, "crossover_probability", p.CrossoverProbability)
	checkProbability(report, "mutation_probability", p.MutationProbability)
	if p.Eta <= 0 {
		report.AddError(Result{
			Field:    "eta",
			Message:  fmt.Sprintf("eta is %g", p.Eta),
			Expected: "> 0",
		})
	}
	if p.GoodBlockRatio <= p.FragmentedBlockRatio {
		report.AddError(Result{
			Field:    "good_block_ratio",
			Message:  fmt.Sprintf("good_block_ratio %g does not exceed fragmented_block_ratio %g", p.GoodBlockRatio, p.FragmentedBlockRatio),
			Expected: "good_block_ratio > fragmented_block_ratio",
		})
	}
}

func checkProbability(report *Report, field string, prob float64) {
	if prob < 0 || prob > 1 {
		report.AddError(Result{
			Field:    field,
			Message:  fmt.Sprintf("%s is %g", field, prob),
			Expected: "in [0, 1]",
		})
	}
}

func validateLotParams(p *spec.Params, report *Report) {
	if p.MinLotWidth <= 0 {
		report.AddError(Result{
			Field:    "min_lot_width",
			Message:  fmt.Sprintf("min_lot_width is %g", p.MinLotWidth),
			Expected: "> 0",
		})
	}
	if p.MinLotWidth > p.MaxLotWidth {
		report.AddError(Result{
			Field:    "max_lot_width",
			Message:  fmt.Sprintf("lot width range [%g, %g] is inverted", p.MinLotWidth, p.MaxLotWidth),
			Expected: "max_lot_width >= min_lot_width",
		})
	} else if p.TargetLotWidth < p.MinLotWidth || p.TargetLotWidth > p.MaxLotWidth {
		report.AddWarning(Result{
			Field:    "target_lot_width",
			Message:  fmt.Sprintf("target_lot_width %g is outside [%g, %g]; the solver will use the midpoint", p.TargetLotWidth, p.MinLotWidth, p.MaxLotWidth),
			Expected: "within lot width bounds",
		})
	}
	if p.SolverTimeLimit <= 0 {
		report.AddError(Result{
			Field:    "solver_time_limit",
			Message:  fmt.Sprintf("solver_time_limit is %g", p.SolverTimeLimit),
			Expected: "> 0 seconds",
		})
	}
	if p.DeviationPenaltyWeight < 0 {
		report.AddError(Result{
			Field:    "deviation_penalty_weight",
			Message:  fmt.Sprintf("deviation_penalty_weight is %g", p.DeviationPenaltyWeight),
			Expected: ">= 0",
		})
	}
	if p.SetbackDistance < 0 {
		report.AddError(Result{
			Field:    "setback_distance",
			Message:  fmt.Sprintf("setback_distance is %g", p.SetbackDistance),
			Expected: ">= 0",
		})
	}
}

func validateShapeParams(p *spec.Params, report *Report) {
	if p.MinRectangularity <= 0 || p.MinRectangularity > 1 {
		report.AddError(Result{
			Field:    "min_rectangularity",
			Message:  fmt.Sprintf("min_rectangularity is %g", p.MinRectangularity),
			Expected: "in (0, 1]",
		})
	}
	if p.MaxAspectRatio < 1 {
		report.AddError(Result{
			Field:    "max_aspect_ratio",
			Message:  fmt.Sprintf("max_aspect_ratio is %g", p.MaxAspectRatio),
			Expected: ">= 1",
		})
	}
	if p.MinLotArea < 0 {
		report.AddError(Result{
			Field:    "min_lot_area",
			Message:  fmt.Sprintf("min_lot_area is %g", p.MinLotArea),
			Expected: ">= 0",
		})
	}
}
