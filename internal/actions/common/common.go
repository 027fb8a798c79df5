package common

import (
	"context"

	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
)

// AppName identifies the HighLevel OAuth app every action is bound to
const AppName = "highlevel_oauth"

// App is the HighLevel client surface actions depend on
type App interface {
	MakeRequest(ctx context.Context, req *highlevel.Request, out any) error
	GetFreeSlots(ctx context.Context, calendarID string, params highlevel.Params) (highlevel.FreeSlotsResponse, error)
	SendNewMessage(ctx context.Context, data map[string]any) (highlevel.MessageResponse, error)
	GetLocationID() string
}

// AppProp is the app reference included in every action
func AppProp() action.Prop {
	return action.Prop{
		Name: "app",
		Type: action.PropTypeApp,
		App:  AppName,
	}
}

// Props returns the base props shared by every action
func Props() []action.Prop {
	return []action.Prop{AppProp()}
}

// CalendarProps extends the base props with a calendar selector
func CalendarProps(app App) []action.Prop {
	return append(Props(), action.Prop{
		Name:        "calendarId",
		Type:        action.PropTypeString,
		Label:       "Calendar ID",
		Description: "The ID of the calendar",
		OptionsFunc: CalendarOptions(app),
	})
}
