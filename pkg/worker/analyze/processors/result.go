package processors

import (
	"strconv"
	"time"
)

type JSONDuration time.Duration

func (d JSONDuration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(time.Duration(d) / time.Millisecond))), nil
}

func (d JSONDuration) String() string {
	return time.Duration(d).String()
}

type Timing struct {
	Name     string
	Duration JSONDuration `json:"DurationMs"`
}

type resultCollector struct {
	timings []Timing
}

func (r *resultCollector) trackTiming(name string, f func()) {
	startedAt := time.Now()
	f()
	r.timings = append(r.timings, Timing{
		Name:     name,
		Duration: JSONDuration(time.Since(startedAt)),
	})
}

func (r *resultCollector) addTimingFrom(name string, from time.Time) {
	r.timings = append(r.timings, Timing{
		Name:     name,
		Duration: JSONDuration(time.Since(from)),
	})
}
