package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blogem/canvass-dashboard/export"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/repositories"
	"github.com/blogem/canvass-dashboard/services"
	"github.com/blogem/canvass-dashboard/userctx"
)

// VoterController handles voter list, edit and export requests
type VoterController struct {
	services *services.Services
	opts     Options
}

// NewVoterController creates a new voter controller
func NewVoterController(services *services.Services, opts Options) *VoterController {
	return &VoterController{
		services: services,
		opts:     opts,
	}
}

type sortOption struct {
	Value string
	Label string
}

var sortOptions = []sortOption{
	{models.SortByName, "İsme göre"},
	{models.SortByID, "Sicil numarasına göre"},
	{models.SortByInstitution, "Kuruma göre"},
	{models.SortByStance, "Eğilime göre"},
}

type voterListView struct {
	Query        models.VoterQuery
	Page         *models.VoterPage
	Institutions []string
	Stances      []string
	NotContacted string
	Sorts        []sortOption
}

type selectOption struct {
	Value    string
	Selected bool
}

type selectView struct {
	Label   string
	Name    string
	Options []selectOption
}

type voterEditView struct {
	Voter        *models.Voter
	Form         *models.VoterForm
	Errors       []string
	History      []models.EditLogEntry
	LeftSelects  []selectView
	RightSelects []selectView
}

// Index handles GET /voters
func (c *VoterController) Index(w http.ResponseWriter, r *http.Request) {
	query := models.ParseVoterQuery(r.URL.Query(), c.opts.PageSize)

	page, err := c.services.Voter.List(r.Context(), query)
	if err != nil {
		slog.Error("failed to list voters", "error", err)
		renderError(w, r, http.StatusServiceUnavailable, "Bağlantı Hatası", connectionErrorMessage)
		return
	}

	data := newPageData(r, "Seçmenler", "voters", voterListView{
		Query:        query,
		Page:         page,
		Institutions: models.InstitutionOptions[1:],
		Stances:      models.StanceOptions[1:],
		NotContacted: models.StanceNotContacted,
		Sorts:        sortOptions,
	})
	renderTemplate(w, "voters", "voters.html", data)
}

// Edit handles GET /voters/edit?id=
func (c *VoterController) Edit(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))

	voter, err := c.services.Voter.Get(r.Context(), id)
	if err != nil {
		c.handleLookupError(w, r, id, err)
		return
	}

	c.renderEdit(w, r, http.StatusOK, voter, voter.Form(), nil, "")
}

// Update handles POST /voters/edit?id=
func (c *VoterController) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := formFromRequest(r)
	editor := userctx.GetUsername(r.Context())

	result, err := c.services.Voter.Update(r.Context(), id, form, editor)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			voter, getErr := c.services.Voter.Get(r.Context(), id)
			if getErr != nil {
				c.handleLookupError(w, r, id, getErr)
				return
			}
			c.renderEdit(w, r, http.StatusBadRequest, voter, form, verr.Messages, "")
		case errors.Is(err, repositories.ErrVoterNotFound):
			c.handleLookupError(w, r, id, err)
		default:
			slog.Error("failed to save voter", "id", id, "editor", editor, "error", err)
			voter, getErr := c.services.Voter.Get(r.Context(), id)
			if getErr != nil {
				renderError(w, r, http.StatusServiceUnavailable, "Bağlantı Hatası", connectionErrorMessage)
				return
			}
			c.renderEdit(w, r, http.StatusServiceUnavailable, voter, form, nil, connectionErrorMessage)
		}
		return
	}

	if result.Logged {
		setFlash(r, "success", fmt.Sprintf("✅ %s başarıyla güncellendi!", result.Voter.Name))
	} else {
		setFlash(r, "warning", fmt.Sprintf("%s güncellendi, ancak değişiklik kaydı yazılamadı.", result.Voter.Name))
	}
	http.Redirect(w, r, "/voters/edit?id="+url.QueryEscape(result.Voter.ID), http.StatusSeeOther)
}

// ExportPDF handles GET /voters/export.pdf
func (c *VoterController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	c.export(w, r, "application/pdf", "pdf", export.WritePDF)
}

// ExportXLSX handles GET /voters/export.xlsx
func (c *VoterController) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	c.export(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", export.WriteXLSX)
}

func (c *VoterController) export(w http.ResponseWriter, r *http.Request, contentType, ext string, write func(w io.Writer, s export.Sheet) error) {
	query := models.ParseVoterQuery(r.URL.Query(), 0)
	query.Page = 1

	page, err := c.services.Voter.List(r.Context(), query)
	if err != nil {
		slog.Error("failed to list voters for export", "error", err)
		renderError(w, r, http.StatusServiceUnavailable, "Bağlantı Hatası", connectionErrorMessage)
		return
	}

	now := time.Now().In(c.opts.Location)
	sheet := export.Sheet{
		Title:       "Seçmen Listesi",
		Filter:      describeQuery(query),
		GeneratedAt: now,
		GeneratedBy: userctx.GetDisplayName(r.Context()),
		Voters:      page.Voters,
	}

	var buf bytes.Buffer
	if err := write(&buf, sheet); err != nil {
		slog.Error("failed to render export", "format", ext, "error", err)
		renderError(w, r, http.StatusInternalServerError, "Dışa Aktarım Hatası", "Dosya oluşturulamadı.")
		return
	}

	filename := fmt.Sprintf("secmenler-%s.%s", now.Format("20060102-1504"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (c *VoterController) handleLookupError(w http.ResponseWriter, r *http.Request, id string, err error) {
	if errors.Is(err, repositories.ErrVoterNotFound) {
		renderError(w, r, http.StatusNotFound, "Kayıt Bulunamadı", fmt.Sprintf("%q sicil numaralı kayıt bulunamadı.", id))
		return
	}
	slog.Error("failed to load voter", "id", id, "error", err)
	renderError(w, r, http.StatusServiceUnavailable, "Bağlantı Hatası", connectionErrorMessage)
}

func (c *VoterController) renderEdit(w http.ResponseWriter, r *http.Request, status int, voter *models.Voter, form *models.VoterForm, formErrors []string, errMsg string) {
	history, err := c.services.Voter.History(r.Context(), voter.ID)
	if err != nil {
		slog.Warn("failed to load voter history", "id", voter.ID, "error", err)
	}

	data := newPageData(r, voter.Name, "voters", voterEditView{
		Voter:   voter,
		Form:    form,
		Errors:  formErrors,
		History: history,
		LeftSelects: []selectView{
			newSelect("Kurum", "kurum", models.InstitutionOptions, form.Institution),
			newSelect("2024 Seçimi", "gecmis_2024", models.History2024Options, form.History2024),
			newSelect("2022 Seçimi", "gecmis_2022", models.History2022Options, form.History2022),
		},
		RightSelects: []selectView{
			newSelect("2026 Eğilimi", "egilim", models.StanceOptions, form.Stance),
			newSelect("Temas Durumu", "temas", models.ContactMethodOptions, form.ContactMethod),
			newSelect("Ulaşım İhtiyacı", "ulasim", models.TransportOptions, form.Transport),
		},
	})
	data.Error = errMsg
	renderTemplateWithStatus(w, status, "voter_edit", "voter_edit.html", data)
}

// newSelect preselects the option matching value, or the empty option when
// the stored value is not one of the allowed choices.
func newSelect(label, name string, options []string, value string) selectView {
	selected := models.OptionIndex(options, value)
	view := selectView{Label: label, Name: name, Options: make([]selectOption, len(options))}
	for i, o := range options {
		view.Options[i] = selectOption{Value: o, Selected: i == selected}
	}
	return view
}

func formFromRequest(r *http.Request) *models.VoterForm {
	return &models.VoterForm{
		Institution:   r.PostFormValue("kurum"),
		History2024:   r.PostFormValue("gecmis_2024"),
		History2022:   r.PostFormValue("gecmis_2022"),
		Referral:      r.PostFormValue("referans"),
		Stance:        r.PostFormValue("egilim"),
		ContactMethod: r.PostFormValue("temas"),
		Transport:     r.PostFormValue("ulasim"),
		Notes:         r.PostFormValue("cizikler"),
		Competitor:    r.PostFormValue("rakip"),
	}
}

func describeQuery(q models.VoterQuery) string {
	var parts []string
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("Arama: %s", q.Search))
	}
	if q.Institution != "" {
		parts = append(parts, fmt.Sprintf("Kurum: %s", q.Institution))
	}
	switch q.Stance {
	case "":
	case models.StanceNotContacted:
		parts = append(parts, "Eğilim: Görüşülmedi")
	default:
		parts = append(parts, fmt.Sprintf("Eğilim: %s", q.Stance))
	}
	if q.Editor != "" {
		parts = append(parts, fmt.Sprintf("Güncelleyen: %s", q.Editor))
	}
	if len(parts) == 0 {
		return "Tüm kayıtlar"
	}
	return strings.Join(parts, " · ")
}
