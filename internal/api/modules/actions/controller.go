package actions_module

import (
	"errors"
	"io"
	"net/http"

	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// ListActions handles GET requests to list every action definition
func ListActions(c *gin.Context) {
	defs := []action.Definition{}
	for _, a := range registry.List() {
		defs = append(defs, a.Definition())
	}

	resp := sdk.ActionsResponse{Actions: defs, Count: len(defs)}
	c.JSON(sdk.NewSuccessResponse("Actions retrieved successfully", resp).AsGinResponse())
}

// GetAction handles GET requests for a single action definition
func GetAction(c *gin.Context) {
	a, err := registry.Get(c.Param("key"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusFor(err), "Action not found", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Action retrieved successfully", a.Definition()).AsGinResponse())
}

// ResolveProps handles POST requests to resolve an action's schema for the posted values
func ResolveProps(c *gin.Context) {
	a, values, ok := parseActionRequest(c)
	if !ok {
		return
	}

	props, err := action.Resolve(c.Request.Context(), a, values)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusFor(err), "Failed to resolve props", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Props resolved successfully", sdk.PropsResponse{Props: props}).AsGinResponse())
}

// ResolvePropOptions handles POST requests to load the options of one prop
func ResolvePropOptions(c *gin.Context) {
	a, values, ok := parseActionRequest(c)
	if !ok {
		return
	}

	options, err := action.ResolveOptions(c.Request.Context(), a, values, c.Param("prop"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusFor(err), "Failed to load options", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Options loaded successfully", sdk.OptionsResponse{Options: options}).AsGinResponse())
}

// RunAction handles POST requests to run an action
func RunAction(c *gin.Context) {
	a, values, ok := parseActionRequest(c)
	if !ok {
		return
	}

	result, err := action.Invoke(c.Request.Context(), a, values)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusFor(err), "Failed to run action", err).AsGinResponse())
		return
	}

	resp := sdk.RunResponse{
		ID:       result.ID,
		Summary:  result.Summary,
		Exports:  result.Exports,
		Response: result.Response,
	}
	c.JSON(sdk.NewSuccessResponse(result.Summary, resp).AsGinResponse())
}

// parseActionRequest looks up the action named by the path and reads the
// posted values. An empty body means no values. On failure the error response
// has been written
func parseActionRequest(c *gin.Context) (action.Action, action.Values, bool) {
	a, err := registry.Get(c.Param("key"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(statusFor(err), "Action not found", err).AsGinResponse())
		return nil, nil, false
	}

	var req sdk.ValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return nil, nil, false
	}

	values := action.Values(req.Values)
	if values == nil {
		values = action.Values{}
	}
	return a, values, true
}
