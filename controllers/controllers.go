package controllers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gitea.com/go-chi/session"
	"github.com/dustin/go-humanize"

	"github.com/blogem/canvass-dashboard/authenticator"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/services"
	"github.com/blogem/canvass-dashboard/templates"
	"github.com/blogem/canvass-dashboard/userctx"
)

// Session keys for flash messages
const (
	sessionFlashType    = "flash_type"
	sessionFlashMessage = "flash_message"
)

const connectionErrorMessage = "Bağlantı hatası: tabloya şu anda ulaşılamıyor. Lütfen biraz sonra tekrar deneyin."

var columnLabels = map[string]string{
	models.ColID:          "Sicil No",
	models.ColName:        "Ad Soyad",
	models.ColInstitution: "Kurum",
	models.ColStance:      "Eğilim",
	models.ColLastEditor:  "Son Güncelleyen",
}

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"eq":  func(a, b interface{}) bool { return a == b },
	"comma": func(n int) string {
		return humanize.FormatInteger("#.###,", n)
	},
	"percent": func(v float64) string {
		return "%" + humanize.FtoaWithDigits(v, 1)
	},
	"humanizeTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return humanize.Time(t)
	},
	"dateTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02.01.2006 15:04")
	},
	"cell": func(v models.Voter, column string) string {
		return v.Column(column)
	},
	"columnLabel": func(column string) string {
		if label, ok := columnLabels[column]; ok {
			return label
		}
		return column
	},
	"withQuery": func(path string, q models.VoterQuery, page int) string {
		if enc := q.Encode(page); enc != "" {
			return path + "?" + enc
		}
		return path
	},
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, templateName, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, templateName string, pageTemplate string, data interface{}) error {
	tmpl, err := template.New(templateName).Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render into a buffer first so a failing template cannot leave half a page behind.
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = fmt.Fprint(w, buf.String())
	return err
}

// newPageData fills the fields every page shares and consumes the pending flash message.
func newPageData(r *http.Request, title, currentPage string, data interface{}) models.PageData {
	return models.PageData{
		Title:       title,
		CurrentPage: currentPage,
		User:        currentUserLabel(r),
		Flash:       popFlash(r),
		Data:        data,
	}
}

func currentUserLabel(r *http.Request) string {
	if userctx.GetUsername(r.Context()) == "" {
		return ""
	}
	return userctx.GetDisplayName(r.Context())
}

func setFlash(r *http.Request, kind, message string) {
	sess := session.GetSession(r)
	if err := sess.Set(sessionFlashType, kind); err != nil {
		slog.Warn("failed to store flash message", "error", err)
		return
	}
	_ = sess.Set(sessionFlashMessage, message)
}

func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}
	message, _ := sess.Get(sessionFlashMessage).(string)
	if message == "" {
		return nil
	}
	kind, _ := sess.Get(sessionFlashType).(string)
	_ = sess.Delete(sessionFlashType)
	_ = sess.Delete(sessionFlashMessage)
	return &models.FlashMessage{Type: kind, Message: message}
}

// renderError shows a message page with the given status
func renderError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	data := newPageData(r, title, "", struct {
		Message string
		BackURL string
	}{
		Message: message,
		BackURL: "/voters",
	})
	renderTemplateWithStatus(w, status, "error", "error.html", data)
}

// Options tunes controller behavior
type Options struct {
	PageSize int
	LogLimit int
	Location *time.Location
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Voter     *VoterController
	Analysis  *AnalysisController
	Log       *LogController
}

// NewControllers creates and initializes all controller instances. provider
// may be nil when single sign-on is not configured.
func NewControllers(services *services.Services, provider authenticator.Provider, opts Options) *Controllers {
	if opts.PageSize < 1 {
		opts.PageSize = models.DefaultPageSize
	}
	if opts.LogLimit < 1 {
		opts.LogLimit = 100
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Controllers{
		Auth:      NewAuthController(services, provider),
		Dashboard: NewDashboardController(),
		Voter:     NewVoterController(services, opts),
		Analysis:  NewAnalysisController(services, opts),
		Log:       NewLogController(services, opts),
	}
}
