package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	activitydomain "projectboard/internal/activity/domain"
	commentservice "projectboard/internal/comment/service"
	"projectboard/internal/platform/apperr"
	"projectboard/internal/server/httpx"
	taskdomain "projectboard/internal/task/domain"
	taskservice "projectboard/internal/task/service"
)

const assigneesField = "usuarios_asignados"

// taskRequest is the body of the create and update forms. Assignees come as one id or a list.
type taskRequest struct {
	Title       string           `json:"titulo" form:"titulo"`
	Description string           `json:"descripcion" form:"descripcion"`
	ProjectID   httpx.OptionalID `json:"proyecto_id" form:"proyecto_id"`
	Responsible httpx.OptionalID `json:"responsable_id" form:"responsable_id"`
	Priority    string           `json:"prioridad" form:"prioridad"`
	DueDate     string           `json:"fecha_vencimiento" form:"fecha_vencimiento"`
	Status      string           `json:"estado" form:"estado"`
	Assignees   httpx.IDList     `json:"usuarios_asignados" form:"-"`
}

// bindTask decodes a task body. Form bodies carry the assignees as repeated fields.
func bindTask(c *gin.Context) (taskRequest, error) {
	var req taskRequest
	if err := bind(c, &req); err != nil {
		return req, err
	}
	if !isJSONBody(c) {
		ids, err := httpx.FormIDList(c.Request.PostForm, assigneesField)
		if err != nil {
			return req, apperr.Validation(msgBadRequest)
		}
		req.Assignees = ids
	}
	return req, nil
}

type commentRequest struct {
	TaskID  httpx.OptionalID `json:"tareaId" form:"tareaId"`
	Comment string           `json:"comentario" form:"comentario"`
}

type assignRequest struct {
	TaskID httpx.OptionalID `json:"tareaId" form:"tareaId"`
	UserID httpx.OptionalID `json:"usuarioId" form:"usuarioId"`
}

type activityRequest struct {
	TaskID      httpx.OptionalID `json:"tareaId" form:"tareaId"`
	Description string           `json:"descripcion" form:"descripcion"`
	Category    string           `json:"tipo" form:"tipo"`
}

// handleCreateTask creates the task and sends the client back to its project page.
func (s *Server) handleCreateTask(c *gin.Context) {
	req, err := bindTask(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	due, err := httpx.ParseDate(req.DueDate)
	if err != nil {
		s.respondError(c, apperr.Validation("La fecha de vencimiento no es válida"))
		return
	}
	res, err := s.deps.Tasks.Create(c.Request.Context(), actor(c), taskservice.CreateInput{
		ProjectID:     req.ProjectID.Int64(),
		Title:         req.Title,
		Description:   req.Description,
		ResponsibleID: req.Responsible.Ptr(),
		Priority:      taskdomain.Priority(req.Priority),
		DueDate:       due,
		AssigneeIDs:   req.Assignees.IDs,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/proyectos/"+strconv.FormatInt(res.ProjectID, 10))
}

// handleUpdateTask replaces every field of the task. The assignment set is reconciled only when
// usuarios_asignados was sent.
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	req, err := bindTask(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	due, err := httpx.ParseDate(req.DueDate)
	if err != nil {
		s.respondError(c, apperr.Validation("La fecha de vencimiento no es válida"))
		return
	}
	msg, err := s.deps.Tasks.Update(c.Request.Context(), actor(c), taskservice.UpdateInput{
		TaskID:            id,
		Title:             req.Title,
		Description:       req.Description,
		ResponsibleID:     req.Responsible.Ptr(),
		Priority:          taskdomain.Priority(req.Priority),
		DueDate:           due,
		Status:            taskdomain.Status(req.Status),
		AssigneeIDs:       req.Assignees.IDs,
		AssigneesProvided: req.Assignees.Set,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, msg, nil)
}

func (s *Server) handleTaskStatus(c *gin.Context) {
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
	res, err := s.deps.Tasks.UpdateStatus(c.Request.Context(), actor(c), id, taskdomain.Status(req.Status))
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, res.Message, gin.H{"changed": res.Changed})
}

// handleTaskDetail serves the task page model. comLimit and actLimit cap the embedded lists; 0 or
// absent means all.
func (s *Server) handleTaskDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		s.respondError(c, err)
		return
	}
	d, err := s.deps.TaskQueries.Detail(c.Request.Context(), actor(c), id,
		httpx.PositiveInt(c.Query("comLimit")), httpx.PositiveInt(c.Query("actLimit")))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) handleListMyTasks(c *gin.Context) {
	list, err := s.deps.TaskQueries.ListForUser(c.Request.Context(), actor(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tareas": list})
}

func (s *Server) handleAddComment(c *gin.Context) {
	var req commentRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	id, err := s.deps.Comments.AddComment(c.Request.Context(), actor(c), req.TaskID.Int64(), req.Comment)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, commentservice.MsgAdded, gin.H{"id": id})
}

func (s *Server) handleAssignUser(c *gin.Context) {
	var req assignRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	if err := s.deps.Tasks.AssignUser(c.Request.Context(), actor(c), req.TaskID.Int64(), req.UserID.Int64()); err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, taskservice.MsgAssigned, nil)
}

func (s *Server) handleListActivities(c *gin.Context) {
	id, err := pathID(c, "tareaId")
	if err != nil {
		s.respondError(c, err)
		return
	}
	list, err := s.deps.TaskQueries.Activities(c.Request.Context(), actor(c), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// handleCreateActivity appends a manual activity entry to a task.
func (s *Server) handleCreateActivity(c *gin.Context) {
	var req activityRequest
	if err := bind(c, &req); err != nil {
		s.respondError(c, err)
		return
	}
	rec, err := s.deps.Tasks.AppendActivity(c.Request.Context(), actor(c), req.TaskID.Int64(),
		activitydomain.Category(req.Category), req.Description)
	if err != nil {
		s.respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Actividad registrada correctamente", gin.H{"actividad": rec})
}

// handleDashboard combines the task dashboard with the caller's projects.
func (s *Server) handleDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	d, err := s.deps.TaskQueries.Dashboard(ctx, actor(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	projects, err := s.deps.Projects.List(ctx, actor(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"estadisticas":          d.Stats,
		"tareas_prioritarias":   d.PriorityTasks,
		"actividades_recientes": d.RecentActivities,
		"proyectos":             projects,
	})
}
