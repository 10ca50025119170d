// Package analysis holds the grouping arithmetic behind the analysis page:
// seniority cohorts from registration ids, counts, crosstabs and the win
// estimate.
package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// UnknownID is the cleaned value of an id that does not parse. It ranks
// unparseable ids after every registration number of up to six digits;
// longer numbers still sort above it.
const UnknownID = 999999

var idSeparators = strings.NewReplacer(" ", "", ".", "", ",", "", "-", "", "/", "", "_", "", "\u00a0", "")

// CleanID turns a registration id with formatting noise into an integer.
func CleanID(s string) int {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".0")
	s = idSeparators.Replace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return UnknownID
	}
	return n
}

// AssignCohorts splits ids into n equal-population buckets by rank of their
// cleaned value. Ties keep input order. The result holds the 0-based bucket
// of each input id.
func AssignCohorts(ids []string, n int) []int {
	if n < 1 {
		n = 1
	}
	total := len(ids)
	buckets := make([]int, total)
	if total == 0 {
		return buckets
	}

	if n > total {
		n = total
	}

	order := rankOrder(ids)
	for rank, idx := range order {
		buckets[idx] = rank * n / total
	}
	return buckets
}

// Cohort describes one bucket
type Cohort struct {
	Index int
	Label string
	MinID int
	MaxID int
	Size  int
}

// Cohorts summarizes the buckets produced by AssignCohorts. Only buckets
// with members are returned, in bucket order.
func Cohorts(ids []string, buckets []int) []Cohort {
	byIndex := map[int]*Cohort{}
	for i, id := range ids {
		b := buckets[i]
		v := CleanID(id)
		c, ok := byIndex[b]
		if !ok {
			c = &Cohort{Index: b, MinID: v, MaxID: v}
			byIndex[b] = c
		}
		if v < c.MinID {
			c.MinID = v
		}
		if v > c.MaxID {
			c.MaxID = v
		}
		c.Size++
	}

	out := make([]Cohort, 0, len(byIndex))
	for _, c := range byIndex {
		c.Label = cohortLabel(*c)
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// CohortLabels returns the label of each input id's bucket.
func CohortLabels(ids []string, n int) []string {
	buckets := AssignCohorts(ids, n)
	labels := map[int]string{}
	for _, c := range Cohorts(ids, buckets) {
		labels[c.Index] = c.Label
	}

	out := make([]string, len(ids))
	for i, b := range buckets {
		out[i] = labels[b]
	}
	return out
}

func cohortLabel(c Cohort) string {
	max := strconv.Itoa(c.MaxID)
	if c.MaxID == UnknownID {
		max = "?"
	}
	min := strconv.Itoa(c.MinID)
	if c.MinID == UnknownID {
		min = "?"
	}
	return fmt.Sprintf("%d. Grup (%s-%s)", c.Index+1, min, max)
}

// rankOrder returns input indexes ordered by cleaned id, stable on ties.
func rankOrder(ids []string) []int {
	keys := make([]int, len(ids))
	order := make([]int, len(ids))
	for i, id := range ids {
		keys[i] = CleanID(id)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})
	return order
}
