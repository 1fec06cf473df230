package awsresources

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/stretchr/testify/assert"
)

func TestMonthToDateWindow(t *testing.T) {
	now := time.Date(2018, 6, 20, 15, 30, 0, 0, time.UTC)
	start, end := monthToDateWindow(now)
	assert.Equal(t, "2018-06-01", start.Format("2006-01-02"))
	assert.Equal(t, "2018-06-20", end.Format("2006-01-02"))
}

func TestMonthToDateWindowOnFirstDay(t *testing.T) {
	now := time.Date(2018, 6, 1, 0, 10, 0, 0, time.UTC)
	start, end := monthToDateWindow(now)
	assert.Equal(t, "2018-06-01", start.Format("2006-01-02"))
	assert.True(t, end.After(start))
}

func TestAverageDatapoints(t *testing.T) {
	assert.Zero(t, averageDatapoints(nil))

	dps := []*cloudwatch.Datapoint{
		{Average: aws.Float64(10)},
		{Average: aws.Float64(30)},
	}
	assert.Equal(t, float64(20), averageDatapoints(dps))
}
