package api

import (
	"net/http"

	reqdto "flashsale-scheduler/internal/handler/dto/request"
	resdto "flashsale-scheduler/internal/handler/dto/response"
	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/usecase/commands"
	"flashsale-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog commands.CatalogCommands
	advisor commands.AdvisorCommands
	q       queries.DashboardQueries
}

func NewProductHandler(catalog commands.CatalogCommands, advisor commands.AdvisorCommands, q queries.DashboardQueries) *ProductHandler {
	return &ProductHandler{catalog: catalog, advisor: advisor, q: q}
}

// @Summary List products
// @Description List the catalog with current prices, filtered and sorted
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Title substring"
// @Param status query string false "all, active or paused"
// @Param sort query string false "default, price-asc, price-desc, stock-asc or stock-desc"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query reqdto.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err, "Invalid query")
		return
	}

	views, err := h.q.ListProducts(c.Request.Context(), queries.ProductFilter{
		Search: query.Search,
		Status: query.Status,
		Sort:   query.Sort,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Dashboard stats
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatsResponse
// @Router /dashboard/stats [get]
func (h *ProductHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get stats", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}

// @Summary Toggle product status
// @Description Pauses an active listing or reactivates a paused one on the marketplace
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /products/{id}/toggle-status [post]
func (h *ProductHandler) ToggleStatus(c *gin.Context) {
	p, err := h.catalog.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Status change failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

// @Summary Suggest a flash sale
// @Description Asks the pricing advisor for a schedule proposal for the product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SuggestionRequest true "Campaign goal"
// @Success 200 {object} resdto.SuggestionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id}/suggestion [post]
func (h *ProductHandler) Suggest(c *gin.Context) {
	var req reqdto.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	result, err := h.advisor.SuggestSchedule(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Suggestion failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSuggestion(result))
}
