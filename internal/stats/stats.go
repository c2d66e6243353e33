// Package stats computes the session statistics shown beside the timer.
// Times are integer centiseconds throughout.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time")

type Penalty int

const (
	PenaltyNone Penalty = iota
	PenaltyPlusTwo
	PenaltyDNF
)

// PlusTwoCentis is the time added by a +2 penalty.
const PlusTwoCentis = 200

func (p Penalty) String() string {
	switch p {
	case PenaltyPlusTwo:
		return "+2"
	case PenaltyDNF:
		return "DNF"
	default:
		return ""
	}
}

// Result is one recorded solve.
type Result struct {
	Centis  int64
	Penalty Penalty
}

func (r Result) IsDNF() bool { return r.Penalty == PenaltyDNF }

// Effective is the time that counts toward averages, +2 included.
func (r Result) Effective() int64 {
	if r.Penalty == PenaltyPlusTwo {
		return r.Centis + PlusTwoCentis
	}
	return r.Centis
}

func (r Result) String() string {
	switch r.Penalty {
	case PenaltyPlusTwo:
		return FormatCentis(r.Effective()) + "+"
	case PenaltyDNF:
		return "DNF(" + FormatCentis(r.Centis) + ")"
	default:
		return FormatCentis(r.Centis)
	}
}

// Stat is a computed figure that may be DNF.
type Stat struct {
	Centis int64
	DNF    bool
}

func (s Stat) String() string {
	if s.DNF {
		return "DNF"
	}
	return FormatCentis(s.Centis)
}

// FormatCentis renders centiseconds as seconds with two decimals.
func FormatCentis(c int64) string {
	sign := ""
	if c < 0 {
		sign, c = "-", -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// MaxSeconds is the longest time ParseSeconds accepts: one day.
const MaxSeconds = 24 * 60 * 60

// ParseSeconds reads a typed time such as "12.3" into centiseconds.
func ParseSeconds(s string) (int64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if f < 0 || f > MaxSeconds || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return int64(math.Round(f * 100)), nil
}

// Average returns the average of the n solves ending before index end.
// The best and worst solves are dropped; one DNF counts as the worst and
// two or more make the average DNF. ok is false until n solves exist.
func Average(results []Result, n, end int) (Stat, bool) {
	if n < 3 || end > len(results) || end < n {
		return Stat{}, false
	}
	var times []int64
	dnfs := 0
	for _, r := range results[end-n : end] {
		if r.IsDNF() {
			dnfs++
			continue
		}
		times = append(times, r.Effective())
	}
	if dnfs > 1 {
		return Stat{DNF: true}, true
	}
	slices.Sort(times)
	times = times[1:]
	if dnfs == 0 {
		times = times[:len(times)-1]
	}
	return Stat{Centis: roundedMean(times)}, true
}

// BestAverage is the lowest non-DNF average of n over the session.
func BestAverage(results []Result, n int) (Stat, bool) {
	var best Stat
	found := false
	for end := n; end <= len(results); end++ {
		avg, ok := Average(results, n, end)
		if !ok || avg.DNF {
			continue
		}
		if !found || avg.Centis < best.Centis {
			best, found = avg, true
		}
	}
	return best, found
}

// Mean is the mean of every non-DNF solve.
func Mean(results []Result) (Stat, bool) {
	var times []int64
	for _, r := range results {
		if !r.IsDNF() {
			times = append(times, r.Effective())
		}
	}
	if len(times) == 0 {
		return Stat{}, false
	}
	return Stat{Centis: roundedMean(times)}, true
}

// Best is the fastest non-DNF solve.
func Best(results []Result) (Result, bool) {
	return pick(results, func(a, b int64) bool { return a < b })
}

// Worst is the slowest non-DNF solve.
func Worst(results []Result) (Result, bool) {
	return pick(results, func(a, b int64) bool { return a > b })
}

func pick(results []Result, better func(a, b int64) bool) (Result, bool) {
	var out Result
	found := false
	for _, r := range results {
		if r.IsDNF() {
			continue
		}
		if !found || better(r.Effective(), out.Effective()) {
			out, found = r, true
		}
	}
	return out, found
}

// Successes counts the solves that are not DNF.
func Successes(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.IsDNF() {
			n++
		}
	}
	return n
}

func roundedMean(times []int64) int64 {
	if len(times) == 0 {
		return 0
	}
	var sum int64
	for _, t := range times {
		sum += t
	}
	n := int64(len(times))
	return (2*sum + n) / (2 * n)
}
