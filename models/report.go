package models

import (
	"time"

	"github.com/blogem/canvass-dashboard/analysis"
)

// AnalysisReport is everything the analysis page shows, computed from one
// read of the voters worksheet and one read of the edit log.
type AnalysisReport struct {
	GeneratedAt time.Time

	Total            int
	Contacted        int
	ContactedPercent int

	// Distributions among contacted voters
	StanceCounts   []analysis.Count
	ContactMethods []analysis.Count
	TransportNeeds []analysis.Count

	SupportersByInstitution []analysis.Count
	Referrals               []analysis.Count

	InstitutionStance *analysis.Crosstab
	History2024Stance *analysis.Crosstab
	History2022Stance *analysis.Crosstab
	CohortStance      *analysis.Crosstab
	Cohorts           []analysis.Cohort

	EditorActivity []analysis.Count
	EditCount      int
	LastEditAt     time.Time

	Win analysis.WinEstimate
}

// HasData reports whether any voter has been contacted yet.
func (r *AnalysisReport) HasData() bool {
	return r.Contacted > 0
}
