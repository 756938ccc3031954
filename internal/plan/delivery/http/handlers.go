package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/response"
)

// Generate godoc
// @Summary     Generate a study plan
// @Description Sends the subject, optional topic, free-form prompt and document text to the language model
// @Description and returns a day-by-day task schedule with repaired dates.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Plan request"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Missing subject, binary file content or body too large"
// @Failure     402  {object} response.Resp "AI credits exhausted"
// @Failure     429  {object} response.Resp "Rate limited"
// @Failure     500  {object} response.Resp "AI service unreachable or invalid AI response"
// @Router      /api/v1/plans/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		if errors.Is(err, plan.ErrSubjectRequired) || errors.Is(err, plan.ErrContentTooLarge) {
			err = h.mapError(err)
		}
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "plan.http.Generate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Plain(c, h.newGenerateResp(output))
}
