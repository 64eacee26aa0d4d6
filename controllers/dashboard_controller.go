package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/services"
	"github.com/pdlamini/portfolio/userctx"
)

// DashboardView is the data behind the dashboard page
type DashboardView struct {
	AdminEmail string
	Messages   []models.ContactMessage
	Count      int
}

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	renderer *Renderer
	logger   *zap.Logger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, renderer *Renderer, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		services: services,
		renderer: renderer,
		logger:   logger,
	}
}

// Index handles GET /dashboard
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	messages, err := c.services.Contact.ListMessages(r.Context())
	if err != nil {
		// Show an empty dashboard rather than an error page
		c.logger.Error("failed to load contact messages", zap.Error(err))
		messages = nil
	}

	c.renderer.Render(w, r, http.StatusOK, pageDashboard, models.PageData{
		Title:       "Dashboard",
		CurrentPage: "dashboard",
		Data: DashboardView{
			AdminEmail: userctx.GetUserEmail(r.Context()),
			Messages:   messages,
			Count:      len(messages),
		},
	})
}
