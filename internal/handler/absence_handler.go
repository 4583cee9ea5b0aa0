package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gymplan/subplan-api/internal/service"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
	"github.com/gymplan/subplan-api/pkg/response"
)

// ToggleAbsenceRequest carries the date whose absence mark should flip.
type ToggleAbsenceRequest struct {
	Date string `json:"date" binding:"required"`
}

// AbsenceHandler manages absence marks and the affected-lesson view.
type AbsenceHandler struct {
	service *service.AbsenceService
}

// NewAbsenceHandler constructs handler.
func NewAbsenceHandler(svc *service.AbsenceService) *AbsenceHandler {
	return &AbsenceHandler{service: svc}
}

// Toggle godoc
// @Summary Toggle a teacher's absence mark for a date
// @Tags Absences
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param payload body ToggleAbsenceRequest true "Date payload"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id}/absences/toggle [post]
func (h *AbsenceHandler) Toggle(c *gin.Context) {
	var req ToggleAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, wr, err := h.service.ToggleAbsence(c.Param("id"), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil, wr.Meta())
}

// Absent godoc
// @Summary List teachers marked absent on a date
// @Tags Absences
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /absences [get]
func (h *AbsenceHandler) Absent(c *gin.Context) {
	teachers, err := h.service.AbsentTeachers(c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers, nil)
}

// Affected godoc
// @Summary List lessons affected by absences on a date
// @Tags Absences
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param teacherId query string false "Preview one more teacher as absent"
// @Success 200 {object} response.Envelope
// @Router /absences/affected [get]
func (h *AbsenceHandler) Affected(c *gin.Context) {
	lessons, day, err := h.service.AffectedLessons(c.Query("date"), c.Query("teacherId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{"day": day, "school_day": day != ""}
	response.JSON(c, http.StatusOK, lessons, nil, meta)
}
