package stats

import "fmt"

// Summary is the side panel of the timer screen.
type Summary struct {
	AO5, AO12         Stat
	HasAO5, HasAO12   bool
	BestAO5, BestAO12 Stat
	HasBestAO5        bool
	HasBestAO12       bool
	Best, Worst       Result
	HasBest           bool
	Mean              Stat
	HasMean           bool
	Successes         int
	Total             int
}

// Summarize computes the panel for the whole session.
func Summarize(results []Result) Summary {
	var s Summary
	s.AO5, s.HasAO5 = Average(results, 5, len(results))
	s.AO12, s.HasAO12 = Average(results, 12, len(results))
	s.BestAO5, s.HasBestAO5 = BestAverage(results, 5)
	s.BestAO12, s.HasBestAO12 = BestAverage(results, 12)
	s.Best, s.HasBest = Best(results)
	s.Worst, _ = Worst(results)
	s.Mean, s.HasMean = Mean(results)
	s.Successes = Successes(results)
	s.Total = len(results)
	return s
}

// Lines returns the panel rows; missing figures are left blank.
func (s Summary) Lines() []string {
	return []string{
		"AO5: " + stat(s.AO5, s.HasAO5),
		"AO12: " + stat(s.AO12, s.HasAO12),
		"Best AO5: " + stat(s.BestAO5, s.HasBestAO5),
		"Best AO12: " + stat(s.BestAO12, s.HasBestAO12),
		"Best time: " + result(s.Best, s.HasBest),
		"Worst time: " + result(s.Worst, s.HasBest),
		fmt.Sprintf("Number of Times: %d/%d", s.Successes, s.Total),
		"Session Mean: " + stat(s.Mean, s.HasMean),
	}
}

func stat(s Stat, ok bool) string {
	if !ok {
		return ""
	}
	return s.String()
}

func result(r Result, ok bool) string {
	if !ok {
		return ""
	}
	return r.String()
}
