package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The parse
// endpoint is rate limited; clients call it per keystroke.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware, parseRatePerMin int) {
	rg.POST("/parse", mw.RateLimit(parseRatePerMin), h.Parse)
	rg.POST("/suggestions", h.Suggestions)
	rg.POST("/completions", h.Completions)
	rg.POST("/patterns", h.Patterns)
	rg.POST("/insights", h.Insights)
	rg.POST("/describe", h.Describe)
}
