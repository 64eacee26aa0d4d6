package controllers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pdlamini/portfolio/authenticator"
	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/services"
	"github.com/pdlamini/portfolio/session"
	"github.com/pdlamini/portfolio/userctx"
)

// Page templates, each rendered inside layout.html
const (
	pageIndex     = "index.html"
	pageLogin     = "login.html"
	pageDashboard = "dashboard.html"
)

const msgInternalError = "Something went wrong. Please try again later."

// Renderer holds the parsed page templates and writes every HTML response
type Renderer struct {
	pages  map[string]*template.Template
	logger *zap.Logger
}

// NewRenderer parses layout.html together with each page template from fsys
func NewRenderer(fsys fs.FS, logger *zap.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"formatDateTime": models.FormatDateTime,
		"year":           func() int { return time.Now().Year() },
	}

	pages := make(map[string]*template.Template)
	for _, page := range []string{pageIndex, pageLogin, pageDashboard} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(fsys, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Renderer{pages: pages, logger: logger}, nil
}

// Render executes page with data and writes it with the given status code.
// Template failures are logged and answered with a generic 500.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, statusCode int, page string, data models.PageData) {
	data.Authenticated = userctx.IsAuthenticated(r.Context())

	tmpl, ok := rd.pages[page]
	if !ok {
		rd.logger.Error("unknown template", zap.String("page", page))
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a failing template never leaves a half-written page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		rd.logger.Error("failed to render template", zap.String("page", page), zap.Error(err))
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	buf.WriteTo(w)
}

// Controllers holds all controller instances
type Controllers struct {
	Home      *HomeController
	Auth      *AuthController
	Dashboard *DashboardController
}

// NewControllers creates and initializes all controller instances
func NewControllers(
	services *services.Services,
	auth authenticator.Provider,
	sessions *session.Manager,
	renderer *Renderer,
	logger *zap.Logger,
) *Controllers {
	return &Controllers{
		Home:      NewHomeController(services, models.DefaultPortfolio(), renderer, logger),
		Auth:      NewAuthController(auth, sessions, renderer, logger),
		Dashboard: NewDashboardController(services, renderer, logger),
	}
}
