package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/calendar"
	"ai-planning-studio/pkg/response"
)

// Export godoc
// @Summary     Export a plan to Google Calendar
// @Description Creates one all-day event per task. Failures are reported per task.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Tasks to export"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "No tasks or too many tasks"
// @Failure     503  {object} response.Resp "Calendar export not configured"
// @Router      /api/v1/calendar/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		if errors.Is(err, calendar.ErrNoTasks) {
			err = h.mapError(err)
		}
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Plain(c, h.newExportResp(output))
}
