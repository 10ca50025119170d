package analysis

import (
	"sort"
	"strings"
)

// EmptyLabel stands in for blank values in counts and crosstabs.
const EmptyLabel = "(boş)"

// Count is the number of rows carrying a label
type Count struct {
	Label string
	Value int
}

// CountBy counts values, largest first and then by label. Blank values count
// under EmptyLabel unless skipEmpty is set.
func CountBy(values []string, skipEmpty bool) []Count {
	counts := map[string]int{}
	for _, v := range values {
		label := strings.TrimSpace(v)
		if label == "" {
			if skipEmpty {
				continue
			}
			label = EmptyLabel
		}
		counts[label]++
	}

	out := make([]Count, 0, len(counts))
	for label, n := range counts {
		out = append(out, Count{Label: label, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Top keeps the first n counts and folds the rest into an "Diğer" bucket.
func Top(counts []Count, n int) []Count {
	if n <= 0 || len(counts) <= n {
		return counts
	}
	out := make([]Count, n, n+1)
	copy(out, counts[:n])
	rest := 0
	for _, c := range counts[n:] {
		rest += c.Value
	}
	return append(out, Count{Label: "Diğer", Value: rest})
}

// Crosstab is a two-way frequency table
type Crosstab struct {
	Title     string
	RowLabels []string
	ColLabels []string
	Cells     [][]int
	RowTotals []int
	ColTotals []int
	Total     int
}

// NewCrosstab tabulates rows against cols. Labels listed in rowOrder and
// colOrder come first in that order; other labels follow alphabetically.
// Blank values tabulate under EmptyLabel.
func NewCrosstab(title string, rows, cols []string, rowOrder, colOrder []string) *Crosstab {
	rowLabels := orderedLabels(rows, rowOrder)
	colLabels := orderedLabels(cols, colOrder)

	rowIdx := indexOf(rowLabels)
	colIdx := indexOf(colLabels)

	ct := &Crosstab{
		Title:     title,
		RowLabels: rowLabels,
		ColLabels: colLabels,
		Cells:     make([][]int, len(rowLabels)),
		RowTotals: make([]int, len(rowLabels)),
		ColTotals: make([]int, len(colLabels)),
	}
	for i := range ct.Cells {
		ct.Cells[i] = make([]int, len(colLabels))
	}

	for i := range rows {
		if i >= len(cols) {
			break
		}
		r := rowIdx[labelOf(rows[i])]
		c := colIdx[labelOf(cols[i])]
		ct.Cells[r][c]++
		ct.RowTotals[r]++
		ct.ColTotals[c]++
		ct.Total++
	}

	return ct
}

// Share returns cell (r, c) as a percentage of its row total.
func (ct *Crosstab) Share(r, c int) float64 {
	if ct.RowTotals[r] == 0 {
		return 0
	}
	return float64(ct.Cells[r][c]) / float64(ct.RowTotals[r]) * 100
}

func labelOf(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return EmptyLabel
	}
	return v
}

func orderedLabels(values, order []string) []string {
	present := map[string]bool{}
	for _, v := range values {
		present[labelOf(v)] = true
	}

	var out []string
	used := map[string]bool{}
	for _, o := range order {
		l := labelOf(o)
		if present[l] && !used[l] {
			out = append(out, l)
			used[l] = true
		}
	}

	var rest []string
	for l := range present {
		if !used[l] {
			rest = append(rest, l)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func indexOf(labels []string) map[string]int {
	m := make(map[string]int, len(labels))
	for i, l := range labels {
		m[l] = i
	}
	return m
}
