package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	identityservice "projectboard/internal/identity/service"
	"projectboard/internal/server/middleware"
)

type registerRequest struct {
	Name            string `json:"nombre" form:"nombre"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmarPassword" form:"confirmarPassword"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type profileRequest struct {
	Name            string `json:"nombre" form:"nombre"`
	Email           string `json:"email" form:"email"`
	CurrentPassword string `json:"passwordActual" form:"passwordActual"`
	NewPassword     string `json:"nuevaPassword" form:"nuevaPassword"`
}

// handleRegister creates the account and signs the new user in.
func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	ctx := c.Request.Context()
	if _, err := s.deps.Accounts.Register(ctx, identityservice.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		s.respondError(c, err)
		return
	}
	res, err := s.deps.Accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.setSession(c, res)
	if !isJSONBody(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	respondOK(c, http.StatusCreated, "Usuario registrado correctamente", gin.H{
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"usuario":    res.User,
	})
}

// handleLogin checks the credentials and sets the session cookie.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	res, err := s.deps.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.setSession(c, res)
	if !isJSONBody(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	respondOK(c, http.StatusOK, "Sesión iniciada", gin.H{
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"usuario":    res.User,
	})
}

// handleLogout clears the session cookie. Tokens are stateless and stay valid until they expire.
func (s *Server) handleLogout(c *gin.Context) {
	s.writeSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) handleProfile(c *gin.Context) {
	p, err := s.deps.Accounts.Profile(c.Request.Context(), actor(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// handleUpdateProfile updates name and email and, when nuevaPassword is set, the password.
func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	u, err := s.deps.Accounts.UpdateProfile(c.Request.Context(), actor(c), identityservice.ProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, identityservice.MsgProfileUpdated, gin.H{"usuario": u})
}

func (s *Server) setSession(c *gin.Context, res *identityservice.LoginResult) {
	maxAge := int(time.Until(res.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	s.writeSessionCookie(c, res.Token, maxAge)
}

func (s *Server) writeSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", s.deps.CookieSecure, true)
}
