package handlers

import (
	"net/http"

	request "assignment_ledger/internal/adapter/http/dto/request"
	response "assignment_ledger/internal/adapter/http/dto/response"
	"assignment_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CalendarHandler manages academic years and terms. The current period used by
// every ledger read is the year and term flagged is_current.
type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// CreateYear godoc
// @Summary      Create academic year
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateAcademicYearRequest  true  "Academic year"
// @Success      201  {object}  entities.AcademicYear
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /calendar/years [post]
func (h *CalendarHandler) CreateYear(c *gin.Context) {
	var payload request.CreateAcademicYearRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	year, err := h.usecase.CreateYear(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusCreated, year)
}

// CreateTerm godoc
// @Summary      Create term
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateTermRequest  true  "Term"
// @Success      201  {object}  entities.Term
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /calendar/terms [post]
func (h *CalendarHandler) CreateTerm(c *gin.Context) {
	var payload request.CreateTermRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	term, err := h.usecase.CreateTerm(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusCreated, term)
}

// GetCalendar godoc
// @Summary      Academic calendar and current period
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  response.CalendarResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	view, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCalendar(view))
}
