package controllers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/services"
)

// User-facing contact form outcomes
const (
	MsgContactSuccess = "Thank you for your message! I'll get back to you soon."
	MsgContactFailure = "Failed to save your message. Please try again later."
)

// HomeView is the data behind the home page
type HomeView struct {
	Portfolio models.Portfolio
	Form      *models.ContactForm
}

// HomeController renders the portfolio page and takes contact submissions
type HomeController struct {
	services  *services.Services
	portfolio models.Portfolio
	renderer  *Renderer
	logger    *zap.Logger
}

// NewHomeController creates a new home controller
func NewHomeController(services *services.Services, portfolio models.Portfolio, renderer *Renderer, logger *zap.Logger) *HomeController {
	return &HomeController{
		services:  services,
		portfolio: portfolio,
		renderer:  renderer,
		logger:    logger,
	}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, &models.ContactForm{}, nil)
}

// Contact handles POST /contact
func (c *HomeController) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.render(w, r, http.StatusBadRequest, &models.ContactForm{}, models.ErrorFlash(models.MsgAllFieldsRequired))
		return
	}

	form := &models.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	msg, err := c.services.Contact.Submit(r.Context(), form)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.render(w, r, http.StatusBadRequest, form, models.ErrorFlash(verr.Message))
			return
		}

		c.logger.Error("failed to save contact message", zap.Error(err))
		c.render(w, r, http.StatusInternalServerError, form, models.ErrorFlash(MsgContactFailure))
		return
	}

	c.logger.Info("contact message received", zap.Int64("id", msg.ID))
	// Clear the form after a successful submission
	c.render(w, r, http.StatusOK, &models.ContactForm{}, models.SuccessFlash(MsgContactSuccess))
}

func (c *HomeController) render(w http.ResponseWriter, r *http.Request, statusCode int, form *models.ContactForm, flash *models.FlashMessage) {
	c.renderer.Render(w, r, statusCode, pageIndex, models.PageData{
		Title:        c.portfolio.Name + " | " + c.portfolio.Title,
		CurrentPage:  "home",
		FlashMessage: flash,
		Data: HomeView{
			Portfolio: c.portfolio,
			Form:      form,
		},
	})
}
