package sdk

import (
	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/google/uuid"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  api_types.StatusType `json:"status"`          // Status message
	Code    int                  `json:"code"`            // Status code
	Message string               `json:"message"`         // Human-readable message
	Data    T                    `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any                  `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  api_types.StatusSuccess,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string, err error) ApiResponse[any] {
	var detail any
	if err != nil {
		detail = err.Error()
	}

	return ApiResponse[any]{
		Status:  api_types.StatusError,
		Code:    code,
		Message: message,
		Error:   detail,
	}
}

/** Requests */

// ValuesRequest carries the current prop values of an action
type ValuesRequest struct {
	Values map[string]any `json:"values"`
}

/** Responses */

// ActionsResponse lists the registered action definitions
type ActionsResponse struct {
	Actions []action.Definition `json:"actions"`
	Count   int                 `json:"count"`
}

// PropsResponse is an action's schema for a set of values
type PropsResponse struct {
	Props []action.Prop `json:"props"`
}

// OptionsResponse is the option list of one prop
type OptionsResponse struct {
	Options []action.Option `json:"options"`
}

// RunResponse is the outcome of running an action
type RunResponse struct {
	ID       uuid.UUID      `json:"id"`
	Summary  string         `json:"summary"`
	Exports  map[string]any `json:"exports"`
	Response any            `json:"response"`
}
