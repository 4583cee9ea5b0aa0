package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymplan/subplan-api/internal/service"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
	"github.com/gymplan/subplan-api/pkg/response"
)

// DirectoryHandler manages the reference-data endpoints.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(svc *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: svc}
}

// ListSubjects godoc
// @Summary List subjects
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *DirectoryHandler) ListSubjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Subjects(), nil)
}

// CreateSubject godoc
// @Summary Create subject
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body service.SubjectRequest true "Subject payload"
// @Success 201 {object} response.Envelope
// @Router /subjects [post]
func (h *DirectoryHandler) CreateSubject(c *gin.Context) {
	var req service.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	subject, wr, err := h.service.CreateSubject(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject, wr.Meta())
}

// UpdateSubject godoc
// @Summary Update subject
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param payload body service.SubjectRequest true "Subject payload"
// @Success 200 {object} response.Envelope
// @Router /subjects/{id} [put]
func (h *DirectoryHandler) UpdateSubject(c *gin.Context) {
	var req service.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	subject, wr, err := h.service.UpdateSubject(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject, nil, wr.Meta())
}

// DeleteSubject godoc
// @Summary Delete subject
// @Tags Directory
// @Produce json
// @Param id path string true "Subject ID"
// @Success 204
// @Router /subjects/{id} [delete]
func (h *DirectoryHandler) DeleteSubject(c *gin.Context) {
	if _, err := h.service.DeleteSubject(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListTeachers godoc
// @Summary List teachers
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *DirectoryHandler) ListTeachers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Teachers(), nil)
}

// CreateTeacher godoc
// @Summary Create teacher
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body service.TeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /teachers [post]
func (h *DirectoryHandler) CreateTeacher(c *gin.Context) {
	var req service.TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, wr, err := h.service.CreateTeacher(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher, wr.Meta())
}

// UpdateTeacher godoc
// @Summary Update teacher
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param payload body service.TeacherRequest true "Teacher payload"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id} [put]
func (h *DirectoryHandler) UpdateTeacher(c *gin.Context) {
	var req service.TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, wr, err := h.service.UpdateTeacher(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil, wr.Meta())
}

// DeleteTeacher godoc
// @Summary Delete teacher
// @Tags Directory
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 204
// @Router /teachers/{id} [delete]
func (h *DirectoryHandler) DeleteTeacher(c *gin.Context) {
	if _, err := h.service.DeleteTeacher(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListClasses godoc
// @Summary List classes
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *DirectoryHandler) ListClasses(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Classes(), nil)
}

// CreateClass godoc
// @Summary Create class
// @Tags Directory
// @Accept json
// @Produce json
// @Param payload body service.ClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Router /classes [post]
func (h *DirectoryHandler) CreateClass(c *gin.Context) {
	var req service.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, wr, err := h.service.CreateClass(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class, wr.Meta())
}

// UpdateClass godoc
// @Summary Update class
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body service.ClassRequest true "Class payload"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [put]
func (h *DirectoryHandler) UpdateClass(c *gin.Context) {
	var req service.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, wr, err := h.service.UpdateClass(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class, nil, wr.Meta())
}

// DeleteClass godoc
// @Summary Delete class
// @Tags Directory
// @Produce json
// @Param id path string true "Class ID"
// @Success 204
// @Router /classes/{id} [delete]
func (h *DirectoryHandler) DeleteClass(c *gin.Context) {
	if _, err := h.service.DeleteClass(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
