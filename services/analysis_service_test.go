package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/canvass-dashboard/analysis"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/repositories/mocks"
)

// AnalysisServiceTestSuite covers the analysis report
type AnalysisServiceTestSuite struct {
	suite.Suite
	service     AnalysisService
	mockVoter   *mocks.MockVoterRepository
	mockEditLog *mocks.MockEditLogRepository
}

func (suite *AnalysisServiceTestSuite) SetupTest() {
	suite.mockVoter = mocks.NewMockVoterRepository(suite.T())
	suite.mockEditLog = mocks.NewMockEditLogRepository(suite.T())
	suite.service = NewAnalysisService(suite.mockVoter, suite.mockEditLog, AnalysisOptions{
		CohortCount:    2,
		ConversionRate: 0.5,
	})
}

func (suite *AnalysisServiceTestSuite) voters() []models.Voter {
	return []models.Voter{
		{ID: "10", Institution: "Dsi", Stance: models.StanceFullList, Referral: "Hasan", ContactMethod: "Kendim Görüştüm"},
		{ID: "20", Institution: "Dsi", Stance: models.StanceMostOfList, Referral: "Hasan", Transport: "Araç Gerekir"},
		{ID: "30", Institution: "Vaski", Stance: models.StanceUndecided},
		{ID: "40", Institution: "Vaski", Stance: models.StanceOpponent},
		{ID: "50", Institution: "", Stance: ""},
		{ID: "60", Institution: "Dsi", Stance: "-"},
	}
}

// TestGetReport_Totals tests the headline numbers and the win estimate
func (suite *AnalysisServiceTestSuite) TestGetReport_Totals() {
	lastEdit := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.voters(), nil, nil)
	suite.mockEditLog.EXPECT().Recent(mock.Anything, 0).Return([]models.EditLogEntry{
		{Editor: "ayse", Timestamp: lastEdit},
		{Editor: "ayse", Timestamp: lastEdit.Add(-time.Hour)},
		{Editor: "mehmet", Timestamp: lastEdit.Add(-2 * time.Hour)},
	}, nil)

	report, err := suite.service.GetReport(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6, report.Total)
	assert.Equal(suite.T(), 4, report.Contacted)
	assert.Equal(suite.T(), 66, report.ContactedPercent)
	assert.True(suite.T(), report.HasData())

	// 2 supporters + 0.5 * 1 undecided against a threshold of 4.
	assert.Equal(suite.T(), 2, report.Win.Supporters)
	assert.Equal(suite.T(), 1, report.Win.Undecided)
	assert.Equal(suite.T(), 4, report.Win.Threshold)
	assert.InDelta(suite.T(), 62.5, report.Win.Percent, 0.001)

	assert.Equal(suite.T(), []analysis.Count{{Label: "Dsi", Value: 2}}, report.SupportersByInstitution)
	assert.Equal(suite.T(), []analysis.Count{{Label: "Hasan", Value: 2}}, report.Referrals)
	assert.Len(suite.T(), report.StanceCounts, 4)

	assert.Equal(suite.T(), 3, report.EditCount)
	assert.Equal(suite.T(), lastEdit, report.LastEditAt)
	assert.Equal(suite.T(), []analysis.Count{{Label: "ayse", Value: 2}, {Label: "mehmet", Value: 1}}, report.EditorActivity)
}

// TestGetReport_Crosstabs tests the institution and cohort crosstabs
func (suite *AnalysisServiceTestSuite) TestGetReport_Crosstabs() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.voters(), nil, nil)
	suite.mockEditLog.EXPECT().Recent(mock.Anything, 0).Return(nil, nil)

	report, err := suite.service.GetReport(context.Background())

	require.NoError(suite.T(), err)
	// Known institutions keep option order; blanks come last.
	assert.Equal(suite.T(), []string{"Dsi", "Vaski", analysis.EmptyLabel}, report.InstitutionStance.RowLabels)
	assert.Equal(suite.T(), 6, report.InstitutionStance.Total)

	require.Len(suite.T(), report.Cohorts, 2)
	assert.Equal(suite.T(), "1. Grup (10-30)", report.Cohorts[0].Label)
	assert.Equal(suite.T(), "2. Grup (40-60)", report.Cohorts[1].Label)
	assert.Equal(suite.T(), []string{"1. Grup (10-30)", "2. Grup (40-60)"}, report.CohortStance.RowLabels)
	assert.Equal(suite.T(), []int{3, 3}, report.CohortStance.RowTotals)
}

// TestGetReport_EditLogUnavailable tests that a failing log read only empties the activity section
func (suite *AnalysisServiceTestSuite) TestGetReport_EditLogUnavailable() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.voters(), nil, nil)
	suite.mockEditLog.EXPECT().Recent(mock.Anything, 0).Return(nil, errors.New("rate limited"))

	report, err := suite.service.GetReport(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6, report.Total)
	assert.Empty(suite.T(), report.EditorActivity)
	assert.True(suite.T(), report.LastEditAt.IsZero())
}

// TestGetReport_VoterReadFails tests that a failing voter read is an error
func (suite *AnalysisServiceTestSuite) TestGetReport_VoterReadFails() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(nil, nil, errors.New("worksheet missing"))

	_, err := suite.service.GetReport(context.Background())

	assert.Error(suite.T(), err)
}

// TestGetReport_Empty tests a sheet with no voters
func (suite *AnalysisServiceTestSuite) TestGetReport_Empty() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return([]models.Voter{}, nil, nil)
	suite.mockEditLog.EXPECT().Recent(mock.Anything, 0).Return(nil, nil)

	report, err := suite.service.GetReport(context.Background())

	require.NoError(suite.T(), err)
	assert.False(suite.T(), report.HasData())
	assert.Equal(suite.T(), 0, report.ContactedPercent)
	assert.Zero(suite.T(), report.Win.Percent)
}

func TestAnalysisServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalysisServiceTestSuite))
}
