// Package apptest provides an in-memory HighLevel app for action tests
package apptest

import (
	"context"
	"encoding/json"
	"maps"
	"sync"

	"github.com/ethanbaker/highlevel/pkg/highlevel"
)

// FreeSlotsCall records one GetFreeSlots invocation
type FreeSlotsCall struct {
	CalendarID string
	Params     highlevel.Params
}

// App answers requests from canned JSON bodies keyed by request path and
// records every call it receives
type App struct {
	LocationID string

	Responses map[string]string // Path -> JSON body; unknown paths answer "{}"
	Errors    map[string]error  // Path -> error returned instead of a body

	FreeSlotsBody string // Defaults to "{}"
	FreeSlotsErr  error
	MessageBody   string // Defaults to "{}"
	MessageErr    error

	mu             sync.Mutex
	Requests       []highlevel.Request
	FreeSlotsCalls []FreeSlotsCall
	Messages       []map[string]any
}

// New creates an app scoped to locationID
func New(locationID string) *App {
	return &App{
		LocationID: locationID,
		Responses:  make(map[string]string),
		Errors:     make(map[string]error),
	}
}

func (a *App) GetLocationID() string {
	return a.LocationID
}

func (a *App) MakeRequest(ctx context.Context, req *highlevel.Request, out any) error {
	a.mu.Lock()
	recorded := *req
	recorded.Params = maps.Clone(req.Params)
	a.Requests = append(a.Requests, recorded)
	a.mu.Unlock()

	if err := a.Errors[req.Path]; err != nil {
		return err
	}
	return decode(a.Responses[req.Path], out)
}

func (a *App) GetFreeSlots(ctx context.Context, calendarID string, params highlevel.Params) (highlevel.FreeSlotsResponse, error) {
	a.mu.Lock()
	a.FreeSlotsCalls = append(a.FreeSlotsCalls, FreeSlotsCall{CalendarID: calendarID, Params: maps.Clone(params)})
	a.mu.Unlock()

	if a.FreeSlotsErr != nil {
		return nil, a.FreeSlotsErr
	}

	var out highlevel.FreeSlotsResponse
	if err := decode(a.FreeSlotsBody, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *App) SendNewMessage(ctx context.Context, data map[string]any) (highlevel.MessageResponse, error) {
	a.mu.Lock()
	a.Messages = append(a.Messages, maps.Clone(data))
	a.mu.Unlock()

	if a.MessageErr != nil {
		return nil, a.MessageErr
	}

	var out highlevel.MessageResponse
	if err := decode(a.MessageBody, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Paths returns the path of every recorded request in order
func (a *App) Paths() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	paths := make([]string, 0, len(a.Requests))
	for _, req := range a.Requests {
		paths = append(paths, req.Path)
	}
	return paths
}

func decode(body string, out any) error {
	if out == nil {
		return nil
	}
	if body == "" {
		body = "{}"
	}
	return json.Unmarshal([]byte(body), out)
}
