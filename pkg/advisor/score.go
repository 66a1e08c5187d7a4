package advisor

import "github.com/plateforge/plateforge/pkg/design"

// Scoring weights. These are heuristics, not a physical simulation; the
// exact values are part of the scoring contract and must not drift.
const (
	scoreStart        = 100
	errorPenalty      = 20
	issuePenalty      = 10
	dimensionBonus    = 5
	idealDepthMin     = 5
	idealDepthMax     = 8
	idealThicknessMin = 5
	idealThicknessMax = 10
)

// Score estimates printability on a 0-100 scale: 100 minus 20 per blocking
// validation error minus 10 per print-feasibility issue, plus a flat 5-point
// bonus each for letter depth within [5,8] and plate thickness within [5,10].
// Bonuses apply unconditionally, even to designs that fail validation, and
// the result is clamped to [0,100].
func (a *Advisor) Score(cfg design.Config) (int, error) {
	score := scoreStart

	result, err := a.validator.Validate(cfg)
	if err != nil {
		return 0, err
	}
	score -= len(result.Errors) * errorPenalty

	_, issues, err := a.ValidateForPrint(cfg)
	if err != nil {
		return 0, err
	}
	score -= len(issues) * issuePenalty

	letterDepth, _, err := cfg.Number(design.FieldLetterDepth)
	if err != nil {
		return 0, err
	}
	if letterDepth >= idealDepthMin && letterDepth <= idealDepthMax {
		score += dimensionBonus
	}

	plateThickness, _, err := cfg.Number(design.FieldPlateThickness)
	if err != nil {
		return 0, err
	}
	if plateThickness >= idealThicknessMin && plateThickness <= idealThicknessMax {
		score += dimensionBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
