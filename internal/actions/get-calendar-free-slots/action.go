package action_getcalendarfreeslots

import (
	"context"
	"fmt"
	"time"

	"github.com/ethanbaker/highlevel/internal/actions/common"
	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
)

// Action retrieves free slots from a HighLevel calendar
type Action struct {
	app common.App
}

// New creates the action bound to app
func New(app common.App) *Action {
	return &Action{app: app}
}

func (a *Action) Definition() action.Definition {
	props := append(common.CalendarProps(a.app),
		action.Prop{
			Name:        "startDate",
			Type:        action.PropTypeString,
			Label:       "Start Date",
			Description: "The start date for slot lookup in YYYY-MM-DD format (e.g., 2024-01-15)",
		},
		action.Prop{
			Name:        "endDate",
			Type:        action.PropTypeString,
			Label:       "End Date",
			Description: "The end date for slot lookup in YYYY-MM-DD format (e.g., 2024-01-16)",
		},
		action.Prop{
			Name:        "userId",
			Type:        action.PropTypeString,
			Label:       "User ID",
			Description: "The user for whom the free slots are returned",
			Optional:    true,
			OptionsFunc: common.UserOptions(a.app),
		},
		action.Prop{
			Name:        "userIds",
			Type:        action.PropTypeStringArray,
			Label:       "User IDs",
			Description: "The users for whom the free slots are returned",
			Optional:    true,
			OptionsFunc: common.UserOptions(a.app),
		},
		action.Prop{
			Name:        "timezone",
			Type:        action.PropTypeString,
			Label:       "Timezone",
			Description: "Timezone for the slots",
			Optional:    true,
			Default:     DEFAULT_TIMEZONE,
			Options:     action.StringOptions(TIMEZONES...),
		},
	)

	return action.Definition{
		Key:         KEY,
		Name:        NAME,
		Description: DESCRIPTION,
		Version:     VERSION,
		Type:        action.TypeAction,
		Props:       props,
	}
}

func (a *Action) Run(ctx context.Context, exec *action.Execution, values action.Values) (any, error) {
	calendarID := values.String("calendarId")

	params, err := buildParams(values)
	if err != nil {
		return nil, err
	}

	resp, err := a.app.GetFreeSlots(ctx, calendarID, params)
	if err != nil {
		return nil, err
	}

	exec.Export(action.SummaryKey, fmt.Sprintf("Successfully retrieved %d free slots from calendar %s", resp.CountSlots(), calendarID))
	return resp, nil
}

// buildParams converts the prop values to free-slots query parameters.
// Unset values are omitted. userIds is accepted as a prop but not forwarded
func buildParams(values action.Values) (highlevel.Params, error) {
	params := highlevel.Params{}

	for _, name := range []string{"startDate", "endDate"} {
		if !values.IsSet(name) {
			continue
		}
		ms, err := toEpochMillis(values.String(name))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		params[name] = ms
	}

	if tz := values.String("timezone"); tz != "" {
		params["timezone"] = tz
	}
	if userID := values.String("userId"); userID != "" {
		params["userId"] = userID
	}

	return params, nil
}

// Accepted date layouts. Layouts without an offset are read as UTC
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// toEpochMillis parses date and returns its unix time in milliseconds
func toEpochMillis(date string) (int64, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UnixMilli(), nil
		}
	}

	return 0, fmt.Errorf("cannot parse %q as a YYYY-MM-DD date", date)
}
