package actions_module

import (
	"errors"
	"net/http"

	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
)

// Registry served by this module
var registry *action.Registry

// Init sets the registry served by this module
func Init(reg *action.Registry) {
	registry = reg
}

// statusFor maps an error to the HTTP status returned to the caller
func statusFor(err error) int {
	var missing *action.MissingPropError
	var apiErr *highlevel.APIError

	switch {
	case errors.Is(err, action.ErrUnknownAction):
		return http.StatusNotFound
	case errors.Is(err, action.ErrUnknownProp), errors.Is(err, action.ErrInvalidProp), errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
