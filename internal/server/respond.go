package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"projectboard/internal/platform/apperr"
	"projectboard/internal/platform/rbac"
	"projectboard/internal/server/middleware"
)

const (
	msgInternal   = "Error interno del servidor"
	msgBadRequest = "Solicitud inválida"
)

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {success:false, message}. Unauthenticated page requests are sent to the login
// page instead. Only messages carried by apperr values reach the client.
func (s *Server) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusUnauthorized && !wantsJSON(c) {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"request_id", middleware.GetRequestID(c.Request.Context()),
			"error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": apperr.Message(err, msgInternal)})
}

func respondOK(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// wantsJSON reports whether the client is a script rather than a page navigation.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	if c.ContentType() == binding.MIMEJSON {
		return true
	}
	if strings.EqualFold(c.GetHeader("X-Requested-With"), "XMLHttpRequest") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), binding.MIMEJSON)
}

// requireLogin rejects requests without an authenticated user.
func (s *Server) requireLogin(c *gin.Context) {
	if _, err := rbac.RequireUser(c.Request.Context()); err != nil {
		s.respondError(c, err)
		return
	}
	c.Next()
}

// actor returns the authenticated user id. Only valid behind requireLogin.
func actor(c *gin.Context) int64 {
	id, _ := middleware.GetUserID(c.Request.Context())
	return id
}

// bind decodes a JSON or form body into dst.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBind(dst); err != nil {
		return apperr.Validation(msgBadRequest)
	}
	return nil
}

func isJSONBody(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEJSON
}

// pathID parses a positive id path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("Identificador inválido")
	}
	return id, nil
}
