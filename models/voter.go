package models

import (
	"strings"

	"github.com/blogem/canvass-dashboard/workbook"
)

// Voter worksheet columns
const (
	ColID            = "Sicil_No"
	ColName          = "Ad_Soyad"
	ColInstitution   = "Kurum"
	ColStance        = "Egilim"
	ColHistory2024   = "Gecmis_2024"
	ColHistory2022   = "Gecmis_2022"
	ColContactMethod = "Temas_Durumu"
	ColTransport     = "Ulasim"
	ColNotes         = "Cizikler"
	ColCompetitor    = "Rakip_Ekleme"
	ColReferral      = "Referans"
	ColLastEditor    = "Son_Guncelleyen"
)

// ListColumns are the columns shown in the voter list, when present.
var ListColumns = []string{ColID, ColName, ColInstitution, ColStance, ColLastEditor}

// Voter is one row of the voters worksheet. Every field is free text as
// stored in the sheet.
type Voter struct {
	Row           int    `json:"-"`
	ID            string `json:"id"`
	Name          string `json:"name"`
	Institution   string `json:"institution"`
	Stance        string `json:"stance"`
	History2024   string `json:"history_2024"`
	History2022   string `json:"history_2022"`
	ContactMethod string `json:"contact_method"`
	Transport     string `json:"transport"`
	Notes         string `json:"notes"`
	Competitor    string `json:"competitor"`
	Referral      string `json:"referral"`
	LastEditor    string `json:"last_editor"`
}

// VoterFromRecord maps a worksheet record onto a Voter. Absent columns read
// as empty strings.
func VoterFromRecord(rec workbook.Record) Voter {
	return Voter{
		Row:           rec.Row,
		ID:            strings.TrimSpace(rec.Get(ColID)),
		Name:          rec.Get(ColName),
		Institution:   rec.Get(ColInstitution),
		Stance:        rec.Get(ColStance),
		History2024:   rec.Get(ColHistory2024),
		History2022:   rec.Get(ColHistory2022),
		ContactMethod: rec.Get(ColContactMethod),
		Transport:     rec.Get(ColTransport),
		Notes:         rec.Get(ColNotes),
		Competitor:    rec.Get(ColCompetitor),
		Referral:      rec.Get(ColReferral),
		LastEditor:    rec.Get(ColLastEditor),
	}
}

// Column returns the value of a worksheet column by name.
func (v *Voter) Column(name string) string {
	switch name {
	case ColID:
		return v.ID
	case ColName:
		return v.Name
	case ColInstitution:
		return v.Institution
	case ColStance:
		return v.Stance
	case ColHistory2024:
		return v.History2024
	case ColHistory2022:
		return v.History2022
	case ColContactMethod:
		return v.ContactMethod
	case ColTransport:
		return v.Transport
	case ColNotes:
		return v.Notes
	case ColCompetitor:
		return v.Competitor
	case ColReferral:
		return v.Referral
	case ColLastEditor:
		return v.LastEditor
	}
	return ""
}

// Contacted reports whether a stance has been recorded.
func (v *Voter) Contacted() bool {
	return len([]rune(strings.TrimSpace(v.Stance))) > 1
}

// Supporter reports whether the voter backs most or all of our list.
func (v *Voter) Supporter() bool {
	return IsSupporterStance(v.Stance)
}

// IsSupporterStance reports whether stance counts as support.
func IsSupporterStance(stance string) bool {
	return stance == StanceFullList || stance == StanceMostOfList
}

// IsUndecidedStance reports whether stance may still swing our way.
func IsUndecidedStance(stance string) bool {
	return stance == StancePartial || stance == StanceUndecided
}

// Form returns the editable fields of v.
func (v *Voter) Form() *VoterForm {
	return &VoterForm{
		Institution:   v.Institution,
		History2024:   v.History2024,
		History2022:   v.History2022,
		Referral:      v.Referral,
		Stance:        v.Stance,
		ContactMethod: v.ContactMethod,
		Transport:     v.Transport,
		Notes:         v.Notes,
		Competitor:    v.Competitor,
	}
}
