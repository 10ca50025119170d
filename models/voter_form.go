package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTextLength bounds the free-text fields of the edit form.
const MaxTextLength = 500

// VoterForm holds the editable fields of a voter
type VoterForm struct {
	Institution   string `json:"institution"`
	History2024   string `json:"history_2024"`
	History2022   string `json:"history_2022"`
	Referral      string `json:"referral"`
	Stance        string `json:"stance"`
	ContactMethod string `json:"contact_method"`
	Transport     string `json:"transport"`
	Notes         string `json:"notes"`
	Competitor    string `json:"competitor"`
}

// ColumnUpdate is a value destined for a named worksheet column.
type ColumnUpdate struct {
	Column string
	Value  string
}

// Validate checks select values against their allowed lists and bounds the
// free-text fields.
func (f *VoterForm) Validate() []string {
	var errors []string

	selects := []struct {
		label   string
		value   string
		options []string
	}{
		{"Kurum", f.Institution, InstitutionOptions},
		{"2024 Seçimi", f.History2024, History2024Options},
		{"2022 Seçimi", f.History2022, History2022Options},
		{"2026 Eğilimi", f.Stance, StanceOptions},
		{"Temas Durumu", f.ContactMethod, ContactMethodOptions},
		{"Ulaşım İhtiyacı", f.Transport, TransportOptions},
	}
	for _, s := range selects {
		if !IsOption(s.options, s.value) {
			errors = append(errors, fmt.Sprintf("%s için geçersiz değer: %q", s.label, s.value))
		}
	}

	texts := []struct {
		label string
		value string
	}{
		{"Referans", f.Referral},
		{"Çizikler / Notlar", f.Notes},
		{"Rakip Ekleme", f.Competitor},
	}
	for _, t := range texts {
		if utf8.RuneCountInString(t.value) > MaxTextLength {
			errors = append(errors, fmt.Sprintf("%s en fazla %d karakter olabilir", t.label, MaxTextLength))
		}
	}

	return errors
}

// Normalize trims surrounding whitespace from the free-text fields.
func (f *VoterForm) Normalize() {
	f.Referral = strings.TrimSpace(f.Referral)
	f.Notes = strings.TrimSpace(f.Notes)
	f.Competitor = strings.TrimSpace(f.Competitor)
}

// Updates returns the column writes for a save, ending with the editor stamp.
func (f *VoterForm) Updates(editor string) []ColumnUpdate {
	return []ColumnUpdate{
		{ColInstitution, f.Institution},
		{ColHistory2024, f.History2024},
		{ColHistory2022, f.History2022},
		{ColReferral, f.Referral},
		{ColStance, f.Stance},
		{ColContactMethod, f.ContactMethod},
		{ColTransport, f.Transport},
		{ColNotes, f.Notes},
		{ColCompetitor, f.Competitor},
		{ColLastEditor, editor},
	}
}
