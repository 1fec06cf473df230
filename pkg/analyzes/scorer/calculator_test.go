package scorer

import (
	"testing"

	"github.com/codequal/codequal-api/pkg/analyzes/metrics"
	"github.com/stretchr/testify/assert"
)

func TestCalcCleanCode(t *testing.T) {
	m := &metrics.Metrics{
		CodeSize:      10,
		FunctionCount: 2,
		ClassCount:    1,
		CommentRatio:  10,
		Complexity:    5,
	}

	res := Calculator{}.Calc(m, nil)

	assert.Equal(t, 10, res.Scores.Style)
	assert.Equal(t, 100.0, res.Scores.Security)
	assert.Equal(t, 5.0, res.Scores.Complexity)

	// 2 functions, 1 type, comment ratio 10
	assert.Equal(t, 40.0, res.Scores.Maintainability)

	// 0.3*5 + 0.3*40 + 0.2*100 + 0.2*100
	assert.Equal(t, 53.5, res.Scores.Overall)

	assert.Empty(t, res.Recommendations)
}

func TestCalcStyleTruncation(t *testing.T) {
	assert.Equal(t, 10, calcStyle(0))
	assert.Equal(t, 9, calcStyle(5))  // 9.5 truncated
	assert.Equal(t, 0, calcStyle(100))
	assert.Equal(t, 0, calcStyle(500))
}

func TestCalcMaintainabilityClamped(t *testing.T) {
	m := &metrics.Metrics{FunctionCount: 50, ClassCount: 10, CommentRatio: 30}
	assert.Equal(t, 100.0, calcMaintainability(m))

	assert.Equal(t, 0.0, calcMaintainability(&metrics.Metrics{}))
}

func TestCalcSecurityFloor(t *testing.T) {
	assert.Equal(t, 100.0, calcSecurity(0))
	assert.Equal(t, 70.0, calcSecurity(3))
	assert.Equal(t, 0.0, calcSecurity(11))
}

func TestCalcRecommendations(t *testing.T) {
	m := &metrics.Metrics{Complexity: 5}
	res := Calculator{}.Calc(m, map[string]int{
		"govet": 10,
		"gosec": 2,
	})

	assert.Len(t, res.Recommendations, 2)
	for _, rec := range res.Recommendations {
		assert.True(t, rec.ScoreIncrease > 0)
		assert.True(t, rec.ScoreIncrease <= 100)
	}
	assert.Contains(t, res.Recommendations[0].Text, "govet")
	assert.Contains(t, res.Recommendations[1].Text, "gosec")

	// more issues of a heavier tool gain more
	assert.True(t, res.Recommendations[0].ScoreIncrease > res.Recommendations[1].ScoreIncrease)
}

func TestCalcRecommendationsSingleStyleIssue(t *testing.T) {
	res := Calculator{}.Calc(&metrics.Metrics{}, map[string]int{"gofmt": 1})

	assert.Len(t, res.Recommendations, 1)
	assert.Equal(t, "fix 1 gofmt issues to gain 4 points", res.Recommendations[0].Text)
}
