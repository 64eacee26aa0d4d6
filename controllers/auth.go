package controllers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdlamini/portfolio/authenticator"
	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/session"
	"github.com/pdlamini/portfolio/userctx"
)

// MsgInvalidLogin is shown for every failed login attempt
const MsgInvalidLogin = "Invalid email or password"

// LoginView is the data behind the login page
type LoginView struct {
	Email string
}

type AuthController struct {
	auth     authenticator.Provider
	sessions *session.Manager
	renderer *Renderer
	logger   *zap.Logger
}

func NewAuthController(auth authenticator.Provider, sessions *session.Manager, renderer *Renderer, logger *zap.Logger) *AuthController {
	return &AuthController{
		auth:     auth,
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// LoginPage handles GET /login
func (ac *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	if userctx.IsAuthenticated(r.Context()) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	ac.render(w, r, http.StatusOK, "", nil)
}

// Login handles POST /login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		ac.render(w, r, http.StatusBadRequest, "", models.ErrorFlash(MsgInvalidLogin))
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if err := ac.auth.Authenticate(email, password); err != nil {
		if errors.Is(err, authenticator.ErrNotConfigured) {
			ac.logger.Warn("login attempted but no admin credential is configured")
		} else {
			ac.logger.Info("failed login attempt", zap.String("email", email))
		}
		ac.render(w, r, http.StatusUnauthorized, email, models.ErrorFlash(MsgInvalidLogin))
		return
	}

	if err := ac.sessions.Login(w, email); err != nil {
		ac.logger.Error("failed to create session", zap.Error(err))
		ac.render(w, r, http.StatusInternalServerError, email, models.ErrorFlash(msgInternalError))
		return
	}

	ac.logger.Info("admin logged in", zap.String("email", email))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles GET /logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ac.sessions.Logout(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (ac *AuthController) render(w http.ResponseWriter, r *http.Request, statusCode int, email string, flash *models.FlashMessage) {
	ac.renderer.Render(w, r, statusCode, pageLogin, models.PageData{
		Title:        "Admin Login",
		CurrentPage:  "login",
		FlashMessage: flash,
		Data:         LoginView{Email: email},
	})
}
