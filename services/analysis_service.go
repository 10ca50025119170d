package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blogem/canvass-dashboard/analysis"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/repositories"
)

// ReferralLeaders is how many referrers the leaderboard shows.
const ReferralLeaders = 10

// AnalysisOptions tunes the report
type AnalysisOptions struct {
	CohortCount    int
	ConversionRate float64
}

// AnalysisService interface defines the analysis report
type AnalysisService interface {
	GetReport(ctx context.Context) (*models.AnalysisReport, error)
}

type analysisService struct {
	voterRepo repositories.VoterRepository
	logRepo   repositories.EditLogRepository
	opts      AnalysisOptions
	now       func() time.Time
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(voterRepo repositories.VoterRepository, logRepo repositories.EditLogRepository, opts AnalysisOptions) AnalysisService {
	if opts.CohortCount < 1 {
		opts.CohortCount = 5
	}
	return &analysisService{
		voterRepo: voterRepo,
		logRepo:   logRepo,
		opts:      opts,
		now:       time.Now,
	}
}

// GetReport reads the voters and the edit log and computes the report. An
// unreadable edit log leaves the activity section empty.
func (s *analysisService) GetReport(ctx context.Context) (*models.AnalysisReport, error) {
	voters, _, err := s.voterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voters: %w", err)
	}

	report := &models.AnalysisReport{
		GeneratedAt: s.now(),
		Total:       len(voters),
	}

	var (
		ids          = make([]string, len(voters))
		stances      = make([]string, len(voters))
		institutions = make([]string, len(voters))
		history2024  = make([]string, len(voters))
		history2022  = make([]string, len(voters))

		contactedStances []string
		contactMethods   []string
		transport        []string
		supporterInst    []string
		referrals        []string
	)
	stanceCounts := map[string]int{}

	for i, v := range voters {
		ids[i] = v.ID
		stances[i] = v.Stance
		institutions[i] = v.Institution
		history2024[i] = v.History2024
		history2022[i] = v.History2022

		if !v.Contacted() {
			continue
		}
		report.Contacted++
		stanceCounts[v.Stance]++
		contactedStances = append(contactedStances, v.Stance)
		contactMethods = append(contactMethods, v.ContactMethod)
		transport = append(transport, v.Transport)

		if v.Supporter() {
			supporterInst = append(supporterInst, v.Institution)
			referrals = append(referrals, v.Referral)
		}
	}

	if report.Total > 0 {
		report.ContactedPercent = report.Contacted * 100 / report.Total
	}

	report.StanceCounts = analysis.CountBy(contactedStances, true)
	report.ContactMethods = analysis.CountBy(contactMethods, false)
	report.TransportNeeds = analysis.CountBy(transport, true)
	report.SupportersByInstitution = analysis.CountBy(supporterInst, false)
	report.Referrals = analysis.Top(analysis.CountBy(referrals, true), ReferralLeaders)

	stanceOrder := models.StanceOptions[1:]
	report.InstitutionStance = analysis.NewCrosstab("Kurum × Eğilim", institutions, stances, models.InstitutionOptions[1:], stanceOrder)
	report.History2024Stance = analysis.NewCrosstab("2024 × Eğilim", history2024, stances, models.History2024Options[1:], stanceOrder)
	report.History2022Stance = analysis.NewCrosstab("2022 × Eğilim", history2022, stances, models.History2022Options[1:], stanceOrder)

	buckets := analysis.AssignCohorts(ids, s.opts.CohortCount)
	report.Cohorts = analysis.Cohorts(ids, buckets)
	cohortLabels := make([]string, len(ids))
	cohortOrder := make([]string, 0, len(report.Cohorts))
	byIndex := map[int]string{}
	for _, c := range report.Cohorts {
		byIndex[c.Index] = c.Label
		cohortOrder = append(cohortOrder, c.Label)
	}
	for i, b := range buckets {
		cohortLabels[i] = byIndex[b]
	}
	report.CohortStance = analysis.NewCrosstab("Kıdem × Eğilim", cohortLabels, stances, cohortOrder, stanceOrder)

	report.Win = analysis.EstimateWin(stanceCounts, report.Total, analysis.WinParams{
		ConversionRate: s.opts.ConversionRate,
		Supporter:      models.IsSupporterStance,
		Undecided:      models.IsUndecidedStance,
	})

	entries, err := s.logRepo.Recent(ctx, 0)
	if err != nil {
		slog.Warn("edit log unavailable for analysis", "error", err)
		return report, nil
	}
	editors := make([]string, 0, len(entries))
	for _, e := range entries {
		editors = append(editors, e.Editor)
		if e.Timestamp.After(report.LastEditAt) {
			report.LastEditAt = e.Timestamp
		}
	}
	report.EditCount = len(entries)
	report.EditorActivity = analysis.CountBy(editors, false)

	return report, nil
}
