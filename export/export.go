// Package export renders the filtered voter list as printable canvass sheets.
package export

import (
	"time"

	"github.com/blogem/canvass-dashboard/models"
)

// Sheet is one export of the voter list
type Sheet struct {
	Title       string
	Filter      string
	GeneratedAt time.Time
	GeneratedBy string
	Voters      []models.Voter
}

type column struct {
	header string
	width  float64 // mm in PDF, characters in XLSX
	value  func(v *models.Voter) string
}

var columns = []column{
	{"Sicil No", 22, func(v *models.Voter) string { return v.ID }},
	{"Ad Soyad", 52, func(v *models.Voter) string { return v.Name }},
	{"Kurum", 36, func(v *models.Voter) string { return v.Institution }},
	{"Eğilim", 44, func(v *models.Voter) string { return v.Stance }},
	{"Temas", 40, func(v *models.Voter) string { return v.ContactMethod }},
	{"Ulaşım", 36, func(v *models.Voter) string { return v.Transport }},
	{"Notlar", 47, func(v *models.Voter) string { return v.Notes }},
}

func headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}
