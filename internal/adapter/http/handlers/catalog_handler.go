package handlers

import (
	"net/http"

	request "assignment_ledger/internal/adapter/http/dto/request"
	response "assignment_ledger/internal/adapter/http/dto/response"
	"assignment_ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateCatalogItem godoc
// @Summary      Create catalog item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        payload  body  request.CreateCatalogItemRequest  true  "Catalog item"
// @Success      201  {object}  response.CatalogItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /catalog-items [post]
func (h *CatalogHandler) CreateCatalogItem(c *gin.Context) {
	var payload request.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogItem(item))
}

// GetCatalogItem godoc
// @Summary      Get catalog item
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "Catalog item ID"
// @Success      200  {object}  response.CatalogItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /catalog-items/{id} [get]
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item))
}
