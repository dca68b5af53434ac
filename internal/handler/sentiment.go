package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetSentiments godoc
// @Summary      Daily sentiment series for one or more symbols
// @Description  Computes a rolling confidence score, reputation, narrative and multi-horizon projections for each day of each symbol's price history
// @Tags         quant
// @Produce      json
// @Param        symbols  query  string  true  "Comma-separated symbols, 1-20, each 1-6 letters (e.g. AAPL,MSFT)"
// @Success      200  {object}  SentimentsResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /api/v1/quant/sentiments [get]
func (h *Handler) GetSentiments(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-sentiments")
	defer span.End()

	symbols, err := ParseSymbols(c.Query("symbols"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	span.SetAttributes(attribute.StringSlice("symbols", symbols))

	data := h.sentiments.ComputeSentiments(ctx, symbols)
	c.JSON(http.StatusOK, NewSentimentsResponse(h.now().UnixMilli(), data))
}
