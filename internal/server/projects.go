package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	memberdomain "projectboard/internal/membership/domain"
	"projectboard/internal/platform/apperr"
	projectdomain "projectboard/internal/project/domain"
	projectservice "projectboard/internal/project/service"
	"projectboard/internal/server/httpx"
)

type projectRequest struct {
	Name        string `json:"nombre" form:"nombre"`
	Description string `json:"descripcion" form:"descripcion"`
	StartDate   string `json:"fecha_inicio" form:"fecha_inicio"`
	EndDate     string `json:"fecha_fin" form:"fecha_fin"`
	Status      string `json:"estado" form:"estado"`
}

func (r projectRequest) input() (projectservice.Input, error) {
	start, err := httpx.ParseDate(r.StartDate)
	if err != nil {
		return projectservice.Input{}, apperr.Validation("La fecha de inicio no es válida")
	}
	end, err := httpx.ParseDate(r.EndDate)
	if err != nil {
		return projectservice.Input{}, apperr.Validation("La fecha de fin no es válida")
	}
	return projectservice.Input{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      projectdomain.Status(r.Status),
	}, nil
}

type statusRequest struct {
	Status string `json:"estado" form:"estado"`
}

type memberRequest struct {
	ProjectID httpx.OptionalID `json:"proyecto_id" form:"proyecto_id"`
	UserID    httpx.OptionalID `json:"usuario_id" form:"usuario_id"`
	Role      string           `json:"rol" form:"rol"`
}

func (s *Server) handleListProjects(c *gin.Context) {
	list, err := s.deps.Projects.List(c.Request.Context(), actor(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proyectos": list})
}

// handleCreateProject creates a project owned by the caller and returns to the dashboard.
func (s *Server) handleCreateProject(c *gin.Context) {
	var req projectRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		s.respondError(c, err)
		return
	}
	if _, err := s.deps.Projects.Create(c.Request.Context(), actor(c), in); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) handleProjectDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	d, err := s.deps.Projects.Detail(c.Request.Context(), actor(c), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	var req projectRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		s.respondError(c, err)
		return
	}
	if _, err := s.deps.Projects.Update(c.Request.Context(), actor(c), id, in); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/proyectos/"+strconv.FormatInt(id, 10))
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.deps.Projects.Delete(c.Request.Context(), actor(c), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (s *Server) handleProjectStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	var req statusRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.deps.Projects.UpdateStatus(c.Request.Context(), actor(c), id, projectdomain.Status(req.Status)); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, projectservice.MsgStatusUpdated, nil)
}

// handleSearchUsers finds users that could be added to proyecto_id. Short terms yield an empty list.
func (s *Server) handleSearchUsers(c *gin.Context) {
	projectID := int64(httpx.PositiveInt(c.Query("proyecto_id")))
	list, err := s.deps.Projects.SearchUsers(c.Request.Context(), actor(c), projectID, c.Query("termino"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleAddMember(c *gin.Context) {
	var req memberRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	err := s.deps.Projects.AddMember(c.Request.Context(), actor(c), req.ProjectID.Int64(), req.UserID.Int64(), memberdomain.Role(req.Role))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, projectservice.MsgMemberAdded, nil)
}

func (s *Server) handleListMembers(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	list, err := s.deps.Projects.Members(c.Request.Context(), actor(c), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
