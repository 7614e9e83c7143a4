package api

import (
	"net/http"

	reqdto "flashsale-scheduler/internal/handler/dto/request"
	resdto "flashsale-scheduler/internal/handler/dto/response"
	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/usecase/commands"
	"flashsale-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.DashboardQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.DashboardQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary List schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleResponse
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	views, err := h.q.ListSchedules(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list schedules", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleViews(views))
}

// @Summary Create schedule
// @Description Schedules a price change for a product over a time window
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScheduleRequest true "Create schedule request"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req reqdto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	created, err := h.cmds.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err, "Create schedule failed")
		return
	}
	c.Header("Location", "/api/schedules/"+created.ID().String())
	c.JSON(http.StatusCreated, resdto.FromSchedule(created))
}

// @Summary Delete schedule
// @Description Cancels a schedule; an active sale reverts to the original price
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteSchedule(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Delete schedule failed")
		return
	}
	c.Status(http.StatusNoContent)
}
