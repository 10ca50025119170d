package models

import (
	"strings"
	"time"

	"github.com/blogem/canvass-dashboard/workbook"
)

// TimestampLayout is how edit log timestamps are written to the sheet.
const TimestampLayout = "2006-01-02 15:04:05"

// Edit log worksheet columns
const (
	LogColEntryID   = "Kayit_ID"
	LogColTimestamp = "Tarih"
	LogColEditor    = "Guncelleyen"
)

// EditLogHeader is the header row of the edit log worksheet.
var EditLogHeader = []string{
	LogColEntryID, LogColTimestamp, ColID, ColName, LogColEditor,
	ColStance, ColHistory2024, ColHistory2022, ColContactMethod, ColTransport,
	ColNotes, ColCompetitor, ColReferral,
}

// EditLogEntry is one saved edit, copied from the form at the time of the save
type EditLogEntry struct {
	EntryID       string    `json:"entry_id"`
	Timestamp     time.Time `json:"timestamp"`
	VoterID       string    `json:"voter_id"`
	VoterName     string    `json:"voter_name"`
	Editor        string    `json:"editor"`
	Stance        string    `json:"stance"`
	History2024   string    `json:"history_2024"`
	History2022   string    `json:"history_2022"`
	ContactMethod string    `json:"contact_method"`
	Transport     string    `json:"transport"`
	Notes         string    `json:"notes"`
	Competitor    string    `json:"competitor"`
	Referral      string    `json:"referral"`
}

// Values renders the entry as a row laid out by header. Unknown columns are
// left empty.
func (e *EditLogEntry) Values(header []string, loc *time.Location) []string {
	if loc == nil {
		loc = time.UTC
	}
	byColumn := map[string]string{
		LogColEntryID:    e.EntryID,
		LogColTimestamp:  e.Timestamp.In(loc).Format(TimestampLayout),
		ColID:            e.VoterID,
		ColName:          e.VoterName,
		LogColEditor:     e.Editor,
		ColStance:        e.Stance,
		ColHistory2024:   e.History2024,
		ColHistory2022:   e.History2022,
		ColContactMethod: e.ContactMethod,
		ColTransport:     e.Transport,
		ColNotes:         e.Notes,
		ColCompetitor:    e.Competitor,
		ColReferral:      e.Referral,
	}

	row := make([]string, len(header))
	for i, h := range header {
		row[i] = byColumn[h]
	}
	return row
}

// EditLogEntryFromRecord parses a log worksheet record. An unparseable
// timestamp is left zero.
func EditLogEntryFromRecord(rec workbook.Record, loc *time.Location) EditLogEntry {
	if loc == nil {
		loc = time.UTC
	}
	ts, _ := time.ParseInLocation(TimestampLayout, strings.TrimSpace(rec.Get(LogColTimestamp)), loc)
	return EditLogEntry{
		EntryID:       rec.Get(LogColEntryID),
		Timestamp:     ts,
		VoterID:       strings.TrimSpace(rec.Get(ColID)),
		VoterName:     rec.Get(ColName),
		Editor:        rec.Get(LogColEditor),
		Stance:        rec.Get(ColStance),
		History2024:   rec.Get(ColHistory2024),
		History2022:   rec.Get(ColHistory2022),
		ContactMethod: rec.Get(ColContactMethod),
		Transport:     rec.Get(ColTransport),
		Notes:         rec.Get(ColNotes),
		Competitor:    rec.Get(ColCompetitor),
		Referral:      rec.Get(ColReferral),
	}
}
