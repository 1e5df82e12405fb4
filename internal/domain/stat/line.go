package stat

import (
	"math"
	"sort"
)

// Line holds the numeric columns of one provider row keyed by column name
// (PTS, AST, FG_PCT, ...).
type Line map[string]float64

func (l Line) Get(column string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	v, ok := l[column]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (l Line) Has(column string) bool {
	_, ok := l.Get(column)
	return ok
}

// Columns returns the sorted column names present in l.
func (l Line) Columns() []string {
	out := make([]string, 0, len(l))
	for k := range l {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Mean averages column over lines, skipping rows where it is missing. The
// second return is false when no row carries the column.
func Mean(lines []Line, column string) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for _, l := range lines {
		v, ok := l.Get(column)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Pct returns part/total*100, or 0 when total is zero.
func Pct(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
