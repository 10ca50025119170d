package models

import (
	"net/url"
	"strconv"
	"strings"
)

// StanceNotContacted filters voters without a recorded stance.
const StanceNotContacted = "__none__"

// Sort keys for the voter list
const (
	SortByName        = "name"
	SortByID          = "id"
	SortByInstitution = "institution"
	SortByStance      = "stance"
)

// DefaultPageSize applies when a query carries no page size.
const DefaultPageSize = 50

// VoterQuery selects, orders and pages the voter list
type VoterQuery struct {
	Search      string
	Institution string
	Stance      string
	Editor      string
	Sort        string
	Page        int
	PageSize    int
}

// ParseVoterQuery reads a query from URL parameters.
func ParseVoterQuery(v url.Values, pageSize int) VoterQuery {
	page, err := strconv.Atoi(v.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return VoterQuery{
		Search:      strings.TrimSpace(v.Get("q")),
		Institution: v.Get("kurum"),
		Stance:      v.Get("egilim"),
		Editor:      v.Get("guncelleyen"),
		Sort:        v.Get("sort"),
		Page:        page,
		PageSize:    pageSize,
	}
}

// Encode renders the query back into URL parameters, with page overridden.
func (q VoterQuery) Encode(page int) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Institution != "" {
		v.Set("kurum", q.Institution)
	}
	if q.Stance != "" {
		v.Set("egilim", q.Stance)
	}
	if q.Editor != "" {
		v.Set("guncelleyen", q.Editor)
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	return v.Encode()
}

// VoterPage is one page of the filtered voter list
type VoterPage struct {
	Columns       []string
	Voters        []Voter
	Total         int
	FilteredTotal int
	Page          int
	PageCount     int
	Editors       []string
}

// HasPrev reports whether a previous page exists.
func (p *VoterPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p *VoterPage) HasNext() bool { return p.Page < p.PageCount }

// SaveResult describes the outcome of saving a voter
type SaveResult struct {
	Voter          Voter
	UpdatedColumns []string
	Logged         bool
}
