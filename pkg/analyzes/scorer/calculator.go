package scorer

import (
	"fmt"
	"math"

	"github.com/codequal/codequal-api/pkg/analyzes/metrics"
)

// Tool names as reported in issues. The lint tool drives the style score,
// the security tool drives the security score.
const (
	lintToolName     = "govet"
	securityToolName = "gosec"
)

type Calculator struct{}

type Recommendation struct {
	Text          string `json:"text"`
	ScoreIncrease int    `json:"score_increase"` // [0; 100], how much overall score can be gained
}

type Scores struct {
	Overall         float64 `json:"overall_score"`
	Style           int     `json:"style_score"` // [0; 10]
	Complexity      float64 `json:"complexity_score"`
	Maintainability float64 `json:"maintainability_score"`
	Security        float64 `json:"security_score"`
}

type CalcResult struct {
	Scores          Scores
	Recommendations []Recommendation
}

type weightedTool struct {
	name   string  // tool name
	weight float64 // importance of tool
}

func (c Calculator) Calc(m *metrics.Metrics, issuesPerTool map[string]int) *CalcResult {
	style := calcStyle(issuesPerTool[lintToolName])
	maintainability := calcMaintainability(m)
	security := calcSecurity(issuesPerTool[securityToolName])
	complexity := round2(m.Complexity)

	overall := 0.3*complexity + 0.3*maintainability + 0.2*security + 0.2*float64(style)*10

	return &CalcResult{
		Scores: Scores{
			Overall:         round2(overall),
			Style:           style,
			Complexity:      complexity,
			Maintainability: maintainability,
			Security:        security,
		},
		Recommendations: c.buildRecommendations(issuesPerTool),
	}
}

func calcStyle(lintIssueCount int) int {
	score := 10 - 0.1*float64(lintIssueCount)
	if score < 0 {
		score = 0
	}

	return int(score)
}

func calcMaintainability(m *metrics.Metrics) float64 {
	score := float64(m.FunctionCount)*5 + float64(m.ClassCount)*10 + m.CommentRatio*2
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return round2(score)
}

func calcSecurity(securityIssueCount int) float64 {
	score := 100 - 10*float64(securityIssueCount)
	if score < 0 {
		score = 0
	}

	return score
}

func (c Calculator) buildRecommendations(issuesPerTool map[string]int) []Recommendation {
	var recs []Recommendation
	for _, wt := range c.getNeededTools() {
		issueCount := issuesPerTool[wt.name]
		if issueCount == 0 {
			continue
		}

		cappedCount := issueCount
		if cappedCount > 100 {
			cappedCount = 100
		}

		// 100 -> 1, 50 -> 0.85, 10 -> 0.5, 5 -> 0.35, 1 -> 0
		normalizedLog := math.Log10(float64(cappedCount)) / 2
		const minScoreForAnyIssue = 0.2
		weight := wt.weight * (minScoreForAnyIssue + (1-minScoreForAnyIssue)*normalizedLog)

		const maxScore = 100
		scoreIncrease := int(weight * maxScore)
		if scoreIncrease == 0 { // rounded to zero
			continue
		}

		recs = append(recs, Recommendation{
			Text:          fmt.Sprintf("fix %d %s issues to gain %d points", issueCount, wt.name, scoreIncrease),
			ScoreIncrease: scoreIncrease,
		})
	}

	return recs
}

func (c Calculator) getNeededTools() []weightedTool {
	return c.normalizeWeightedTools([]weightedTool{
		{lintToolName, 1},
		{securityToolName, 0.8},
		{"gofmt", 0.5},
	})
}

func (c Calculator) normalizeWeightedTools(tools []weightedTool) []weightedTool {
	res := make([]weightedTool, 0, len(tools))
	totalWeight := float64(0)
	for _, wt := range tools {
		totalWeight += wt.weight
	}

	for _, wt := range tools {
		res = append(res, weightedTool{wt.name, wt.weight / totalWeight})
	}

	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
