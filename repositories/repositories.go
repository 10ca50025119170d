package repositories

import (
	"time"

	"github.com/blogem/canvass-dashboard/workbook"
)

// SheetNames names the worksheets of the campaign workbook
type SheetNames struct {
	Voters  string
	Users   string
	EditLog string
}

// DefaultSheetNames are the worksheet names used by the campaign spreadsheet.
var DefaultSheetNames = SheetNames{
	Voters:  "secmenler",
	Users:   "kullanicilar",
	EditLog: "degisiklik_log",
}

// Repositories struct holds all repository interfaces
type Repositories struct {
	Voter   VoterRepository
	User    UserRepository
	EditLog EditLogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(wb workbook.Workbook, names SheetNames, loc *time.Location) *Repositories {
	return &Repositories{
		Voter:   NewVoterRepository(wb, names.Voters),
		User:    NewUserRepository(wb, names.Users),
		EditLog: NewEditLogRepository(wb, names.EditLog, loc),
	}
}
