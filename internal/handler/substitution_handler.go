package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gymplan/subplan-api/internal/service"
	appErrors "github.com/gymplan/subplan-api/pkg/errors"
	"github.com/gymplan/subplan-api/pkg/response"
)

// SubstitutionHandler manages candidate ranking and substitution records.
type SubstitutionHandler struct {
	service *service.SubstitutionService
}

// NewSubstitutionHandler constructs handler.
func NewSubstitutionHandler(svc *service.SubstitutionService) *SubstitutionHandler {
	return &SubstitutionHandler{service: svc}
}

// Candidates godoc
// @Summary Rank replacement candidates for a lesson slot
// @Tags Substitutions
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param day query string true "Day symbol"
// @Param shift query string true "Shift symbol"
// @Param period query int true "Period number"
// @Param subjectId query string true "Subject ID"
// @Success 200 {object} response.Envelope
// @Router /substitutions/candidates [get]
func (h *SubstitutionHandler) Candidates(c *gin.Context) {
	period, _ := strconv.Atoi(c.Query("period"))
	req := service.RankCandidatesRequest{
		Date:      c.Query("date"),
		Day:       c.Query("day"),
		Shift:     c.Query("shift"),
		Period:    period,
		SubjectID: c.Query("subjectId"),
	}
	candidates, err := h.service.RankCandidates(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, candidates, nil)
}

// Assign godoc
// @Summary Assign a replacement teacher
// @Tags Substitutions
// @Accept json
// @Produce json
// @Param payload body service.AssignRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /substitutions [post]
func (h *SubstitutionHandler) Assign(c *gin.Context) {
	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	sub, wr, err := h.service.Assign(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sub, wr.Meta())
}

// Unassign godoc
// @Summary Remove a substitution record
// @Tags Substitutions
// @Produce json
// @Param id path string true "Substitution ID"
// @Success 204
// @Router /substitutions/{id} [delete]
func (h *SubstitutionHandler) Unassign(c *gin.Context) {
	if _, err := h.service.Unassign(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// List godoc
// @Summary List substitutions for a date with resolved names
// @Tags Substitutions
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /substitutions [get]
func (h *SubstitutionHandler) List(c *gin.Context) {
	details, err := h.service.ListForDate(c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, details, nil)
}
