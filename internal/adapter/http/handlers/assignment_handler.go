package handlers

import (
	"log"
	"net/http"

	request "assignment_ledger/internal/adapter/http/dto/request"
	response "assignment_ledger/internal/adapter/http/dto/response"
	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for the assignment lifecycle:
// creation, status transitions, time settings and receptions.
type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// CreateAssignment godoc
// @Summary      Create assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        payload  body  request.CreateAssignmentRequest  true  "Assignment"
// @Success      201  {object}  response.AssignmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var payload request.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[assignment][handler] create invalid payload err=%s", request.Describe(err))
		writeError(c, errInvalidAssignmentPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(actorFrom(c)))
	if err != nil {
		log.Printf("[assignment][handler] create failed beneficiary_id=%s err=%v", payload.BeneficiaryID, err)
		writeError(c, mapAssignmentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromAssignment(created))
}

// GetAssignment godoc
// @Summary      Get assignment
// @Tags         assignments
// @Produce      json
// @Param        id  path  string  true  "Assignment ID"
// @Success      200  {object}  response.AssignmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(rec))
}

// ListBeneficiaryAssignments godoc
// @Summary      List beneficiary assignments
// @Tags         beneficiaries
// @Produce      json
// @Param        id  path  string  true  "Beneficiary ID"
// @Success      200  {array}  response.AssignmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /beneficiaries/{id}/assignments [get]
func (h *AssignmentHandler) ListBeneficiaryAssignments(c *gin.Context) {
	items, err := h.usecase.ListByBeneficiary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignments(items))
}

// RemoveAssignment deletes a record that has no financial or physical activity.
//
// @Summary      Remove assignment without activity
// @Tags         assignments
// @Produce      json
// @Param        id  path  string  true  "Assignment ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id} [delete]
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Remove(c.Request.Context(), id); err != nil {
		log.Printf("[assignment][handler] remove failed id=%s err=%v", id, err)
		writeError(c, mapAssignmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// EnableAssignment godoc
// @Summary      Enable assignment
// @Tags         assignments
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Success      200  {object}  response.AssignmentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/enable [patch]
func (h *AssignmentHandler) EnableAssignment(c *gin.Context) {
	rec, err := h.usecase.Enable(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(rec))
}

// DisableAssignment godoc
// @Summary      Disable assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Param        payload  body  request.DisableAssignmentRequest  true  "Effect and reason"
// @Success      200  {object}  response.AssignmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/disable [patch]
func (h *AssignmentHandler) DisableAssignment(c *gin.Context) {
	var payload request.DisableAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	rec, err := h.usecase.Disable(
		c.Request.Context(),
		c.Param("id"),
		actorFrom(c),
		entities.DisableEffect(payload.Effect),
		payload.Reason,
	)
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(rec))
}

// AdjustTimeSettings godoc
// @Summary      Adjust validity and term applicability
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Param        payload  body  request.TimeSettingsRequest  true  "Time settings"
// @Success      200  {object}  response.AssignmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/time-settings [patch]
func (h *AssignmentHandler) AdjustTimeSettings(c *gin.Context) {
	var payload request.TimeSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	rec, err := h.usecase.AdjustTimeSettings(
		c.Request.Context(),
		c.Param("id"),
		actorFrom(c),
		payload.Validity.ToEntity(),
		payload.TermApplicability.ToEntity(),
	)
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(rec))
}

// RecordReception godoc
// @Summary      Record a delivery
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string  false  "Actor recorded in history"
// @Param        id  path  string  true  "Assignment ID"
// @Param        payload  body  request.ReceptionRequest  true  "Channel and quantity"
// @Success      200  {object}  response.AssignmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/receptions [post]
func (h *AssignmentHandler) RecordReception(c *gin.Context) {
	var payload request.ReceptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	id := c.Param("id")
	rec, err := h.usecase.RecordReception(
		c.Request.Context(),
		id,
		actorFrom(c),
		entities.ReceptionChannel(payload.Channel),
		payload.Quantity,
	)
	if err != nil {
		log.Printf("[assignment][handler] reception failed id=%s channel=%s quantity=%d err=%v", id, payload.Channel, payload.Quantity, err)
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignment(rec))
}

// GetSummary exposes remaining, balance and period applicability for one record.
//
// @Summary      Remaining, balance and period applicability
// @Tags         assignments
// @Produce      json
// @Param        id  path  string  true  "Assignment ID"
// @Param        academic_year_id  query  string  false  "Academic year (defaults to current)"
// @Param        term_id  query  string  false  "Term (defaults to current)"
// @Success      200  {object}  response.SummaryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /assignments/{id}/summary [get]
func (h *AssignmentHandler) GetSummary(c *gin.Context) {
	var query request.PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("id"), query.ToEntity())
	if err != nil {
		writeError(c, mapAssignmentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(summary))
}
