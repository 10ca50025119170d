package models

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/canvass-dashboard/workbook"
)

func TestVoterFromRecord(t *testing.T) {
	rec := workbook.Record{
		Row: 7,
		Values: map[string]string{
			ColID:     " 12.345 ",
			ColName:   "Ali Veli",
			ColStance: StanceUndecided,
		},
	}

	v := VoterFromRecord(rec)

	assert.Equal(t, 7, v.Row)
	assert.Equal(t, "12.345", v.ID)
	assert.Equal(t, "Ali Veli", v.Name)
	assert.Equal(t, "", v.Institution)
	assert.True(t, v.Contacted())
	assert.False(t, v.Supporter())
	assert.Equal(t, "Ali Veli", v.Column(ColName))
	assert.Equal(t, "", v.Column("Unknown"))
}

func TestVoterContacted(t *testing.T) {
	cases := map[string]bool{
		"":              false,
		" ":             false,
		"-":             false,
		StanceFullList:  true,
		StanceOpponent:  true,
		"Kısmen Yazar ": true,
	}
	for stance, want := range cases {
		v := Voter{Stance: stance}
		assert.Equal(t, want, v.Contacted(), "stance %q", stance)
	}
}

func TestOptionIndex(t *testing.T) {
	assert.Equal(t, 2, OptionIndex(StanceOptions, StanceMostOfList))
	assert.Equal(t, 0, OptionIndex(StanceOptions, ""))
	assert.Equal(t, 0, OptionIndex(StanceOptions, "bilinmiyor"))
	assert.Equal(t, 3, OptionIndex(History2022Options, "Beyaz Liste"))
}

func TestVoterFormValidation(t *testing.T) {
	valid := VoterForm{
		Institution: "Dsi",
		Stance:      StanceFullList,
		History2024: "Mavi Liste",
		Transport:   "Araç Gerekir",
		Notes:       "2 kişi çizer",
	}
	assert.Empty(t, valid.Validate())

	invalid := VoterForm{
		Institution: "Uzay Ajansı",
		Stance:      "Belki",
		Notes:       strings.Repeat("x", MaxTextLength+1),
	}
	errors := invalid.Validate()
	assert.Len(t, errors, 3)
}

func TestVoterFormUpdates(t *testing.T) {
	form := VoterForm{Stance: StanceUndecided, Notes: "  ara  "}
	form.Normalize()

	updates := form.Updates("ayse")

	require.Len(t, updates, 10)
	assert.Equal(t, ColumnUpdate{Column: ColLastEditor, Value: "ayse"}, updates[len(updates)-1])
	assert.Contains(t, updates, ColumnUpdate{Column: ColNotes, Value: "ara"})
	assert.Contains(t, updates, ColumnUpdate{Column: ColStance, Value: StanceUndecided})
}

func TestVoterFormRoundTrip(t *testing.T) {
	v := Voter{Institution: "Vaski", Stance: StancePartial, Referral: "Mehmet"}
	f := v.Form()
	assert.Equal(t, "Vaski", f.Institution)
	assert.Equal(t, StancePartial, f.Stance)
	assert.Equal(t, "Mehmet", f.Referral)
}

func TestEditLogEntryValues(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	entry := EditLogEntry{
		EntryID:   "e1",
		Timestamp: time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC),
		VoterID:   "1001",
		VoterName: "Ali Veli",
		Editor:    "ayse",
		Stance:    StanceFullList,
	}

	header := []string{LogColTimestamp, ColID, "Bilinmeyen", LogColEditor, ColStance}
	row := entry.Values(header, loc)

	assert.Equal(t, []string{"2026-01-02 12:30:00", "1001", "", "ayse", StanceFullList}, row)

	rec := workbook.Record{Row: 2, Values: map[string]string{
		LogColTimestamp: "2026-01-02 12:30:00",
		ColID:           "1001",
		LogColEditor:    "ayse",
	}}
	parsed := EditLogEntryFromRecord(rec, loc)
	assert.True(t, parsed.Timestamp.Equal(entry.Timestamp))
	assert.Equal(t, "ayse", parsed.Editor)
}

func TestParseVoterQuery(t *testing.T) {
	v := url.Values{}
	v.Set("q", "  ali ")
	v.Set("egilim", StanceNotContacted)
	v.Set("page", "-3")

	q := ParseVoterQuery(v, 25)

	assert.Equal(t, "ali", q.Search)
	assert.Equal(t, StanceNotContacted, q.Stance)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "egilim=__none__&page=2&q=ali", q.Encode(2))
}

func TestUserLabel(t *testing.T) {
	u := UserFromRecord(workbook.Record{Values: map[string]string{
		UserColUsername: " ayse ",
		UserColPassword: "gizli",
	}})
	assert.Equal(t, "ayse", u.Username)
	assert.Equal(t, "ayse", u.Label())

	u.DisplayName = "Ayşe Kaya"
	assert.Equal(t, "Ayşe Kaya", u.Label())
}
