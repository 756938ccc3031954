package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-planning-studio/internal/document"
	"ai-planning-studio/pkg/response"
)

// Parse godoc
// @Summary     Extract text from a document
// @Description Decodes a base64 upload (PDF, DOCX, DOC, PPTX, text or HTML) and returns its plain text.
// @Description When no readable text is found, content holds a warning message and the status is still 200.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Base64 file with name and MIME type"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Missing fields, file too large or unsupported format"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		if errors.Is(err, document.ErrMissingFile) || errors.Is(err, document.ErrFileTooLarge) {
			err = h.mapError(err)
		}
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "document.http.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Plain(c, h.newParseResp(output))
}
