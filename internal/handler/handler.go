package handler

import (
	"context"
	"time"

	"quant-sentiment/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type SentimentComputer interface {
	ComputeSentiments(ctx context.Context, symbols []string) map[string]domain.SentimentSeries
}

type Handler struct {
	tracer     trace.Tracer
	sentiments SentimentComputer
	now        func() time.Time
}

func New(tracer trace.Tracer, sentiments SentimentComputer) *Handler {
	return &Handler{
		tracer:     tracer,
		sentiments: sentiments,
		now:        time.Now,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	v1.GET("/health", h.Health)
	v1.GET("/quant/sentiments", h.GetSentiments)
}
