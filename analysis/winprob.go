package analysis

// DefaultConversionRate is the share of undecided voters assumed to come
// over to our list.
const DefaultConversionRate = 0.5

// WinParams configures EstimateWin
type WinParams struct {
	ConversionRate float64
	// Supporter and Undecided classify stance labels.
	Supporter func(stance string) bool
	Undecided func(stance string) bool
}

// WinEstimate is the outcome of the heuristic
type WinEstimate struct {
	Total          int
	Supporters     int
	Undecided      int
	// ConversionRate is the rate actually applied, after clamping to [0,1].
	ConversionRate float64
	Projected      float64
	Threshold      int
	Percent        float64
}

// EstimateWin projects supporters plus a fixed share of the undecided
// against a simple majority of all members and returns it as a capped
// percentage.
func EstimateWin(stanceCounts map[string]int, total int, p WinParams) WinEstimate {
	rate := p.ConversionRate
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}

	est := WinEstimate{Total: total, ConversionRate: rate}
	for stance, n := range stanceCounts {
		switch {
		case p.Supporter != nil && p.Supporter(stance):
			est.Supporters += n
		case p.Undecided != nil && p.Undecided(stance):
			est.Undecided += n
		}
	}

	if total <= 0 {
		return est
	}

	est.Threshold = total/2 + 1
	est.Projected = float64(est.Supporters) + rate*float64(est.Undecided)
	est.Percent = clamp(est.Projected/float64(est.Threshold)*100, 0, 100)
	return est
}

// ConversionPercent is ConversionRate as a percentage.
func (e WinEstimate) ConversionPercent() float64 {
	return e.ConversionRate * 100
}

// Remaining is how many more projected votes the majority needs.
func (e WinEstimate) Remaining() float64 {
	if gap := float64(e.Threshold) - e.Projected; gap > 0 {
		return gap
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
