package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSuggestionsReq binds and validates the suggestions request body.
func (h *handler) processSuggestionsReq(c *gin.Context) (suggestionsReq, error) {
	var req suggestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCompletionsReq binds and validates the completions request body.
func (h *handler) processCompletionsReq(c *gin.Context) (completionsReq, error) {
	var req completionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processPatternsReq binds and validates the patterns request body.
func (h *handler) processPatternsReq(c *gin.Context) (patternsReq, error) {
	var req patternsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processInsightsReq binds and validates the insights request body.
func (h *handler) processInsightsReq(c *gin.Context) (insightsReq, error) {
	var req insightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDescribeReq binds and validates the describe request body.
func (h *handler) processDescribeReq(c *gin.Context) (describeReq, error) {
	var req describeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
