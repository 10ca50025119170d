package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/canvass-dashboard/authenticator"
	"github.com/blogem/canvass-dashboard/middleware"
	"github.com/blogem/canvass-dashboard/models"
	"github.com/blogem/canvass-dashboard/services"
)

const sessionOAuthState = "oauth_state"

// AuthController handles login and logout
type AuthController struct {
	services *services.Services
	provider authenticator.Provider
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, provider authenticator.Provider) *AuthController {
	return &AuthController{
		services: services,
		provider: provider,
	}
}

type loginView struct {
	Username   string
	SSOEnabled bool
}

func (c *AuthController) renderLogin(w http.ResponseWriter, r *http.Request, status int, username, errMsg string) {
	data := newPageData(r, "Giriş", "login", loginView{
		Username:   username,
		SSOEnabled: c.provider != nil,
	})
	data.User = ""
	data.Error = errMsg
	renderTemplateWithStatus(w, status, "login", "login.html", data)
}

// ShowLogin handles GET /login
func (c *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if username, _ := session.GetSession(r).Get(middleware.SessionUsername).(string); username != "" {
		http.Redirect(w, r, "/voters", http.StatusSeeOther)
		return
	}
	c.renderLogin(w, r, http.StatusOK, "", "")
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	user, err := c.services.Auth.Authenticate(r.Context(), username, password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.renderLogin(w, r, http.StatusUnauthorized, username, "Kullanıcı adı veya şifre hatalı.")
		return
	case err != nil:
		slog.Error("login failed", "username", username, "error", err)
		c.renderLogin(w, r, http.StatusServiceUnavailable, username, connectionErrorMessage)
		return
	}

	c.startSession(w, r, user)
}

// SSOLogin handles GET /login/sso
func (c *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	sess := session.GetSession(r)
	sess.Set(sessionOAuthState, state)

	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback from the identity provider
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	storedState, _ := sess.Get(sessionOAuthState).(string)
	if storedState == "" || r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}
	sess.Delete(sessionOAuthState)

	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusUnauthorized)
		return
	}

	user, err := c.services.Auth.LookupUser(r.Context(), claims.Username())
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.renderLogin(w, r, http.StatusForbidden, "", "Bu hesap kullanıcı listesinde bulunmuyor.")
		return
	case err != nil:
		slog.Error("sso lookup failed", "claim", claims.Username(), "error", err)
		c.renderLogin(w, r, http.StatusServiceUnavailable, "", connectionErrorMessage)
		return
	}

	if user.DisplayName == "" {
		user.DisplayName = claims.DisplayName()
	}
	c.startSession(w, r, user)
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := session.GetSession(r).Flush(); err != nil {
		slog.Warn("failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (c *AuthController) startSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	sess := session.GetSession(r)
	sess.Set(middleware.SessionUsername, user.Username)
	sess.Set(middleware.SessionDisplayName, user.Label())

	target := "/voters"
	if next, ok := sess.Get(middleware.SessionRedirectAfter).(string); ok && isLocalPath(next) {
		target = next
	}
	sess.Delete(middleware.SessionRedirectAfter)

	slog.Info("user logged in", "username", user.Username)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// isLocalPath rejects absolute and protocol-relative redirect targets.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
