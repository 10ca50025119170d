package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/blogem/canvass-dashboard/analysis"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/repositories"
)

// ValidationError carries the form messages of a rejected save
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// VoterService interface defines voter list and edit business logic
type VoterService interface {
	List(ctx context.Context, query models.VoterQuery) (*models.VoterPage, error)
	Get(ctx context.Context, id string) (*models.Voter, error)
	History(ctx context.Context, id string) ([]models.EditLogEntry, error)
	RecentEdits(ctx context.Context, limit int) ([]models.EditLogEntry, error)
	Update(ctx context.Context, id string, form *models.VoterForm, editor string) (*models.SaveResult, error)
}

type voterService struct {
	voterRepo repositories.VoterRepository
	logRepo   repositories.EditLogRepository
	now       func() time.Time
}

// NewVoterService creates a new voter service
func NewVoterService(voterRepo repositories.VoterRepository, logRepo repositories.EditLogRepository) VoterService {
	return &voterService{
		voterRepo: voterRepo,
		logRepo:   logRepo,
		now:       time.Now,
	}
}

// List filters, sorts and pages the voter list. A query page size of zero
// or less returns every matching voter on a single page.
func (s *voterService) List(ctx context.Context, query models.VoterQuery) (*models.VoterPage, error) {
	voters, header, err := s.voterRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load voters: %w", err)
	}

	page := &models.VoterPage{
		Columns: visibleColumns(header),
		Total:   len(voters),
		Editors: editors(voters),
	}

	matched := filterVoters(voters, query)
	sortVoters(matched, query.Sort)
	page.FilteredTotal = len(matched)

	size := query.PageSize
	if size <= 0 {
		page.Page = 1
		page.PageCount = 1
		page.Voters = matched
		return page, nil
	}

	page.PageCount = (len(matched) + size - 1) / size
	if page.PageCount < 1 {
		page.PageCount = 1
	}
	page.Page = query.Page
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Page > page.PageCount {
		page.Page = page.PageCount
	}

	start := (page.Page - 1) * size
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	page.Voters = matched[start:end]
	return page, nil
}

// Get returns one voter by id
func (s *voterService) Get(ctx context.Context, id string) (*models.Voter, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, repositories.ErrVoterNotFound
	}
	return s.voterRepo.GetByID(ctx, id)
}

// History returns the edits of one voter, newest first
func (s *voterService) History(ctx context.Context, id string) ([]models.EditLogEntry, error) {
	return s.logRepo.GetByVoterID(ctx, id)
}

// RecentEdits returns the latest edits across all voters
func (s *voterService) RecentEdits(ctx context.Context, limit int) ([]models.EditLogEntry, error) {
	return s.logRepo.Recent(ctx, limit)
}

// Update validates the form, writes it to the voter's row and records the
// edit in the log. A failed log append leaves the row written and is
// reported through SaveResult.Logged.
func (s *voterService) Update(ctx context.Context, id string, form *models.VoterForm, editor string) (*models.SaveResult, error) {
	form.Normalize()
	if msgs := form.Validate(); len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	// Re-read so the row number reflects the sheet as it is now.
	voter, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	written, err := s.voterRepo.Update(ctx, voter, form.Updates(editor))
	if err != nil {
		return nil, fmt.Errorf("failed to save voter %s: %w", voter.ID, err)
	}

	saved := applyForm(*voter, form, editor)
	result := &models.SaveResult{
		Voter:          saved,
		UpdatedColumns: written,
	}

	entry := &models.EditLogEntry{
		EntryID:       uuid.NewString(),
		Timestamp:     s.now(),
		VoterID:       saved.ID,
		VoterName:     saved.Name,
		Editor:        editor,
		Stance:        form.Stance,
		History2024:   form.History2024,
		History2022:   form.History2022,
		ContactMethod: form.ContactMethod,
		Transport:     form.Transport,
		Notes:         form.Notes,
		Competitor:    form.Competitor,
		Referral:      form.Referral,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		slog.Warn("edit saved but not logged", "voter_id", saved.ID, "editor", editor, "error", err)
		return result, nil
	}

	result.Logged = true
	return result, nil
}

func applyForm(v models.Voter, f *models.VoterForm, editor string) models.Voter {
	v.Institution = f.Institution
	v.History2024 = f.History2024
	v.History2022 = f.History2022
	v.Referral = f.Referral
	v.Stance = f.Stance
	v.ContactMethod = f.ContactMethod
	v.Transport = f.Transport
	v.Notes = f.Notes
	v.Competitor = f.Competitor
	v.LastEditor = editor
	return v
}

func visibleColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var cols []string
	for _, c := range models.ListColumns {
		if present[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

func editors(voters []models.Voter) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range voters {
		e := strings.TrimSpace(v.LastEditor)
		if e != "" && !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}
	collate.New(language.Turkish).SortStrings(out)
	return out
}

// foldTurkish lowers s with Turkish rules and folds dotless i so that
// "ISIK", "Işık" and "isik" all compare equal.
func foldTurkish(c cases.Caser, s string) string {
	return strings.ReplaceAll(c.String(s), "ı", "i")
}

func filterVoters(voters []models.Voter, q models.VoterQuery) []models.Voter {
	caser := cases.Lower(language.Turkish)
	needle := foldTurkish(caser, strings.TrimSpace(q.Search))

	out := make([]models.Voter, 0, len(voters))
	for _, v := range voters {
		if needle != "" &&
			!strings.Contains(foldTurkish(caser, v.Name), needle) &&
			!strings.Contains(v.ID, needle) {
			continue
		}
		if q.Institution != "" && v.Institution != q.Institution {
			continue
		}
		switch q.Stance {
		case "":
		case models.StanceNotContacted:
			if v.Contacted() {
				continue
			}
		default:
			if v.Stance != q.Stance {
				continue
			}
		}
		if q.Editor != "" && strings.TrimSpace(v.LastEditor) != q.Editor {
			continue
		}
		out = append(out, v)
	}
	return out
}

func sortVoters(voters []models.Voter, key string) {
	col := collate.New(language.Turkish)
	byName := func(a, b *models.Voter) int {
		return col.CompareString(a.Name, b.Name)
	}

	switch key {
	case models.SortByName:
		sort.SliceStable(voters, func(i, j int) bool {
			return byName(&voters[i], &voters[j]) < 0
		})
	case models.SortByID:
		sort.SliceStable(voters, func(i, j int) bool {
			return analysis.CleanID(voters[i].ID) < analysis.CleanID(voters[j].ID)
		})
	case models.SortByInstitution:
		sort.SliceStable(voters, func(i, j int) bool {
			if c := col.CompareString(voters[i].Institution, voters[j].Institution); c != 0 {
				return c < 0
			}
			return byName(&voters[i], &voters[j]) < 0
		})
	case models.SortByStance:
		sort.SliceStable(voters, func(i, j int) bool {
			a := models.OptionIndex(models.StanceOptions, voters[i].Stance)
			b := models.OptionIndex(models.StanceOptions, voters[j].Stance)
			if a != b {
				return a < b
			}
			return byName(&voters[i], &voters[j]) < 0
		})
	}
}
