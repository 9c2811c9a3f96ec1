package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-assistant/pkg/response"
)

// Parse godoc
// @Summary     Parse free text into a structured todo
// @Description Extracts due date, priority, and category from free text and returns a cleaned title with extraction details.
// @Tags        Assist
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} response.Resp "data holds the extraction result"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assist/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.ParseTodo(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTodo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Suggestions godoc
// @Summary     Suggest todos for the current time
// @Description Returns recurring todo suggestions derived from the hour and weekday of the reference time.
// @Tags        Assist
// @Accept      json
// @Produce     json
// @Param       body body suggestionsReq true "Existing todos and optional reference time"
// @Success     200 {object} response.Resp "data holds the suggestion list"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assist/suggestions [POST]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.SuggestTodos(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTodos: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestionsResp(output))
}

// Completions godoc
// @Summary     Suggest follow-up actions for a todo
// @Description Returns up to three follow-up actions based on the verbs and date mentions in the todo text.
// @Tags        Assist
// @Accept      json
// @Produce     json
// @Param       body body completionsReq true "Todo text"
// @Success     200 {object} response.Resp "data holds the completion list"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assist/completions [POST]
func (h *handler) Completions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompletionsReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.SuggestCompletions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestCompletions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompletionsResp(output))
}

// Patterns godoc
// @Summary     Analyze todo patterns
// @Description Aggregates category and title keyword frequencies over the supplied todos.
// @Tags        Assist
// @Accept      json
// @Produce     json
// @Param       body body patternsReq true "Todos to analyze"
// @Success     200 {object} response.Resp "data holds the aggregated patterns"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assist/patterns [POST]
func (h *handler) Patterns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPatternsReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.AnalyzeUserPatterns(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeUserPatterns: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPatternsResp(output))
}

// Insights godoc
// @Summary     Generate productivity insights
// @Description Computes completion rate, overdue, and focus-area insights over active and completed todos.
// @Tags        Assist
// @Accept      json
// @Produce     json
// @Param       body body insightsReq true "Active and completed todos"
// @Success     200 {object} response.Resp "data holds the insight list"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assist/insights [POST]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInsightsReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.GenerateInsights(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateInsights: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// Describe godoc
// @Summary     Generate a todo description
// @Description Returns a short actionable description for the todo title, generated when a provider is configured, else templated.
// @Tags        Assist
// @Accept      json
// @Produce     json
// @Param       body body describeReq true "Todo title"
// @Success     200 {object} response.Resp "data holds the description"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assist/describe [POST]
func (h *handler) Describe(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDescribeReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.GenerateDescription(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateDescription: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDescribeResp(output))
}
