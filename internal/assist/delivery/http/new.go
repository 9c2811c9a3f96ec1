package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/pkg/log"
)

// Handler is the public interface for the assist HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Suggestions(c *gin.Context)
	Completions(c *gin.Context)
	Patterns(c *gin.Context)
	Insights(c *gin.Context)
	Describe(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assist.UseCase
}

// New creates a new HTTP handler for the assist domain.
func New(l log.Logger, uc assist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
