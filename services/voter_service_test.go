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

	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/repositories"
	"github.com/blogem/canvass-dashboard/repositories/mocks"
)

// VoterServiceTestSuite covers listing and saving voters
type VoterServiceTestSuite struct {
	suite.Suite
	service      *voterService
	mockVoter    *mocks.MockVoterRepository
	mockEditLog  *mocks.MockEditLogRepository
	fixedNow     time.Time
	sampleHeader []string
}

func (suite *VoterServiceTestSuite) SetupTest() {
	suite.mockVoter = mocks.NewMockVoterRepository(suite.T())
	suite.mockEditLog = mocks.NewMockEditLogRepository(suite.T())
	suite.fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	suite.service = NewVoterService(suite.mockVoter, suite.mockEditLog).(*voterService)
	suite.service.now = func() time.Time { return suite.fixedNow }

	suite.sampleHeader = []string{models.ColID, models.ColName, models.ColStance, "Telefon"}
}

func (suite *VoterServiceTestSuite) sampleVoters() []models.Voter {
	return []models.Voter{
		{Row: 2, ID: "1.200", Name: "Zeynep Öztürk", Institution: "Dsi", Stance: models.StanceFullList, LastEditor: "ayse"},
		{Row: 3, ID: "300", Name: "IRMAK Yılmaz", Institution: "Vaski", Stance: ""},
		{Row: 4, ID: "abc", Name: "İnci Çelik", Institution: "Dsi", Stance: models.StanceUndecided, LastEditor: "mehmet"},
		{Row: 5, ID: "45", Name: "Ahmet Şahin", Institution: "Özel Sektör", Stance: "x"},
	}
}

// TestList_VisibleColumnsAndEditors tests that only present list columns are shown
func (suite *VoterServiceTestSuite) TestList_VisibleColumnsAndEditors() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.sampleVoters(), suite.sampleHeader, nil)

	page, err := suite.service.List(context.Background(), models.VoterQuery{PageSize: 50})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{models.ColID, models.ColName, models.ColStance}, page.Columns)
	assert.Equal(suite.T(), []string{"ayse", "mehmet"}, page.Editors)
	assert.Equal(suite.T(), 4, page.Total)
	assert.Equal(suite.T(), 4, page.FilteredTotal)
	assert.Equal(suite.T(), 1, page.PageCount)
}

// TestList_TurkishSearch tests case-insensitive search with Turkish casing
func (suite *VoterServiceTestSuite) TestList_TurkishSearch() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.sampleVoters(), suite.sampleHeader, nil)

	cases := map[string]string{
		"irmak": "IRMAK Yılmaz",
		"İNCİ":  "İnci Çelik",
		"yilmaz": "IRMAK Yılmaz",
		"1.200": "Zeynep Öztürk",
	}
	for search, want := range cases {
		page, err := suite.service.List(context.Background(), models.VoterQuery{Search: search, PageSize: 50})
		require.NoError(suite.T(), err)
		require.Len(suite.T(), page.Voters, 1, search)
		assert.Equal(suite.T(), want, page.Voters[0].Name, search)
	}
}

// TestList_Filters tests the institution, stance and editor filters
func (suite *VoterServiceTestSuite) TestList_Filters() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.sampleVoters(), suite.sampleHeader, nil)
	ctx := context.Background()

	page, err := suite.service.List(ctx, models.VoterQuery{Institution: "Dsi"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, page.FilteredTotal)

	// Single-character stances count as not contacted.
	page, err = suite.service.List(ctx, models.VoterQuery{Stance: models.StanceNotContacted})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Voters, 2)
	assert.Equal(suite.T(), "300", page.Voters[0].ID)
	assert.Equal(suite.T(), "45", page.Voters[1].ID)

	page, err = suite.service.List(ctx, models.VoterQuery{Stance: models.StanceUndecided, Editor: "mehmet"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), page.Voters, 1)
	assert.Equal(suite.T(), "abc", page.Voters[0].ID)
}

// TestList_Sorting tests sorting by cleaned id and by Turkish name order
func (suite *VoterServiceTestSuite) TestList_Sorting() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.sampleVoters(), suite.sampleHeader, nil)
	ctx := context.Background()

	page, err := suite.service.List(ctx, models.VoterQuery{Sort: models.SortByID})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"45", "300", "1.200", "abc"}, voterIDs(page.Voters))

	page, err = suite.service.List(ctx, models.VoterQuery{Sort: models.SortByName})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"45", "300", "abc", "1.200"}, voterIDs(page.Voters))

	page, err = suite.service.List(ctx, models.VoterQuery{Sort: models.SortByStance})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "1.200", page.Voters[len(page.Voters)-2].ID)
	assert.Equal(suite.T(), "abc", page.Voters[len(page.Voters)-1].ID)
}

// TestList_PageClamped tests that out-of-range pages are clamped
func (suite *VoterServiceTestSuite) TestList_PageClamped() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(suite.sampleVoters(), suite.sampleHeader, nil)

	page, err := suite.service.List(context.Background(), models.VoterQuery{Page: 99, PageSize: 3})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, page.Page)
	assert.Equal(suite.T(), 2, page.PageCount)
	assert.Len(suite.T(), page.Voters, 1)
	assert.True(suite.T(), page.HasPrev())
	assert.False(suite.T(), page.HasNext())
}

// TestList_RepositoryError tests that read failures are returned
func (suite *VoterServiceTestSuite) TestList_RepositoryError() {
	suite.mockVoter.EXPECT().GetAll(mock.Anything).Return(nil, nil, errors.New("quota exceeded"))

	_, err := suite.service.List(context.Background(), models.VoterQuery{})

	assert.ErrorContains(suite.T(), err, "quota exceeded")
}

func (suite *VoterServiceTestSuite) validForm() *models.VoterForm {
	return &models.VoterForm{
		Institution:   "Dsi",
		Stance:        models.StanceFullList,
		ContactMethod: "Kendim Görüştüm",
		Transport:     "Araç Gerekir",
		Notes:         "  2 çizik  ",
	}
}

// TestUpdate_Success tests that a save writes cells and appends one log row
func (suite *VoterServiceTestSuite) TestUpdate_Success() {
	voter := &models.Voter{Row: 7, ID: "1001", Name: "Ali Veli"}
	form := suite.validForm()

	suite.mockVoter.EXPECT().GetByID(mock.Anything, "1001").Return(voter, nil)
	suite.mockVoter.EXPECT().Update(mock.Anything, voter, mock.MatchedBy(func(u []models.ColumnUpdate) bool {
		last := u[len(u)-1]
		return len(u) == 10 && last.Column == models.ColLastEditor && last.Value == "ayse"
	})).Return([]string{models.ColStance, models.ColLastEditor}, nil)
	suite.mockEditLog.EXPECT().Append(mock.Anything, mock.MatchedBy(func(e *models.EditLogEntry) bool {
		return e.VoterID == "1001" && e.VoterName == "Ali Veli" && e.Editor == "ayse" &&
			e.Notes == "2 çizik" && e.Timestamp.Equal(suite.fixedNow) && e.EntryID != ""
	})).Return(nil)

	result, err := suite.service.Update(context.Background(), "1001", form, "ayse")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Logged)
	assert.Equal(suite.T(), models.StanceFullList, result.Voter.Stance)
	assert.Equal(suite.T(), "ayse", result.Voter.LastEditor)
	assert.Equal(suite.T(), []string{models.ColStance, models.ColLastEditor}, result.UpdatedColumns)
}

// TestUpdate_LogFailureKeepsWrite tests that a failed log append is reported, not rolled back
func (suite *VoterServiceTestSuite) TestUpdate_LogFailureKeepsWrite() {
	voter := &models.Voter{Row: 7, ID: "1001", Name: "Ali Veli"}

	suite.mockVoter.EXPECT().GetByID(mock.Anything, "1001").Return(voter, nil)
	suite.mockVoter.EXPECT().Update(mock.Anything, voter, mock.Anything).Return([]string{models.ColStance}, nil)
	suite.mockEditLog.EXPECT().Append(mock.Anything, mock.Anything).Return(errors.New("sheet locked"))

	result, err := suite.service.Update(context.Background(), "1001", suite.validForm(), "ayse")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Logged)
	assert.Equal(suite.T(), []string{models.ColStance}, result.UpdatedColumns)
}

// TestUpdate_ValidationFailure tests that invalid forms never reach the sheet
func (suite *VoterServiceTestSuite) TestUpdate_ValidationFailure() {
	form := suite.validForm()
	form.Stance = "Belki"

	_, err := suite.service.Update(context.Background(), "1001", form, "ayse")

	var verr *ValidationError
	require.ErrorAs(suite.T(), err, &verr)
	assert.Len(suite.T(), verr.Messages, 1)
}

// TestUpdate_VoterNotFound tests saving a voter that has disappeared from the sheet
func (suite *VoterServiceTestSuite) TestUpdate_VoterNotFound() {
	suite.mockVoter.EXPECT().GetByID(mock.Anything, "1001").Return(nil, repositories.ErrVoterNotFound)

	_, err := suite.service.Update(context.Background(), "1001", suite.validForm(), "ayse")

	assert.ErrorIs(suite.T(), err, repositories.ErrVoterNotFound)
}

// TestGet_EmptyID tests that a blank id is not looked up
func (suite *VoterServiceTestSuite) TestGet_EmptyID() {
	_, err := suite.service.Get(context.Background(), "  ")

	assert.ErrorIs(suite.T(), err, repositories.ErrVoterNotFound)
}

func voterIDs(voters []models.Voter) []string {
	ids := make([]string, len(voters))
	for i, v := range voters {
		ids[i] = v.ID
	}
	return ids
}

func TestVoterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoterServiceTestSuite))
}
