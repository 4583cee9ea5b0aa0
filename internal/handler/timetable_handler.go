package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/internal/service"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
	"github.com/gymplan/subplan-api/pkg/response"
)

// TimetableHandler manages the weekly grid endpoints.
type TimetableHandler struct {
	service *service.TimetableService
}

// NewTimetableHandler constructs handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Grid godoc
// @Summary List lessons for one day and shift
// @Tags Timetable
// @Produce json
// @Param day query string true "Day symbol"
// @Param shift query string true "Shift symbol"
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *TimetableHandler) Grid(c *gin.Context) {
	day, ok := models.ParseDay(c.Query("day"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown or missing day"))
		return
	}
	shift, ok := models.ParseShift(c.Query("shift"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown or missing shift"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.Grid(day, shift), nil)
}

// SetCell godoc
// @Summary Upsert a grid cell
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body service.SetLessonRequest true "Lesson payload"
// @Success 200 {object} response.Envelope
// @Router /schedule/cell [put]
func (h *TimetableHandler) SetCell(c *gin.Context) {
	var req service.SetLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	lesson, wr, err := h.service.SetLesson(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lesson, nil, wr.Meta())
}

// Delete godoc
// @Summary Delete a lesson
// @Tags Timetable
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 204
// @Router /schedule/{id} [delete]
func (h *TimetableHandler) Delete(c *gin.Context) {
	if _, err := h.service.DeleteLesson(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// TeacherLessons godoc
// @Summary List one teacher's lessons on a day
// @Tags Timetable
// @Produce json
// @Param id path string true "Teacher ID"
// @Param day query string true "Day symbol"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id}/lessons [get]
func (h *TimetableHandler) TeacherLessons(c *gin.Context) {
	day, ok := models.ParseDay(c.Query("day"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown or missing day"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.LessonsOf(c.Param("id"), day), nil)
}

// Conflicts godoc
// @Summary Check a proposed teacher placement for conflicts
// @Tags Timetable
// @Produce json
// @Param teacherId query string true "Teacher ID"
// @Param day query string true "Day symbol"
// @Param shift query string true "Shift symbol"
// @Param period query int true "Period number"
// @Param excludeId query string false "Lesson to ignore (self-edit)"
// @Success 200 {object} response.Envelope
// @Router /schedule/conflicts [get]
func (h *TimetableHandler) Conflicts(c *gin.Context) {
	day, ok := models.ParseDay(c.Query("day"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown or missing day"))
		return
	}
	shift, ok := models.ParseShift(c.Query("shift"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown or missing shift"))
		return
	}
	period, err := strconv.Atoi(c.Query("period"))
	if err != nil || !models.ValidPeriod(period) {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "period must be a number between 1 and 8"))
		return
	}
	conflict := h.service.HasConflict(c.Query("teacherId"), day, shift, period, c.Query("excludeId"))
	response.JSON(c, http.StatusOK, gin.H{"conflict": conflict}, nil)
}
