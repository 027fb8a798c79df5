package common_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethanbaker/highlevel/internal/actions/common"
	"github.com/ethanbaker/highlevel/internal/testutil/apptest"
	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarProps(t *testing.T) {
	props := common.CalendarProps(apptest.New("loc-1"))

	require.Len(t, props, 2)
	assert.Equal(t, "app", props[0].Name)
	assert.Equal(t, action.PropTypeApp, props[0].Type)
	assert.Equal(t, common.AppName, props[0].App)
	assert.Equal(t, "calendarId", props[1].Name)
	assert.False(t, props[1].Optional)
	assert.NotNil(t, props[1].OptionsFunc)
}

func TestCalendarOptions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		body     string
		expected []action.Option
	}{
		{
			name: "active calendars only",
			body: `{"calendars":[{"id":"c1","name":"Sales","isActive":true},{"id":"c2","name":"Old","isActive":false},{"id":"c3","name":"Support","isActive":true}]}`,
			expected: []action.Option{
				{Label: "Sales", Value: "c1"},
				{Label: "Support", Value: "c3"},
			},
		},
		{"missing list", `{}`, []action.Option{}},
		{"empty list", `{"calendars":[]}`, []action.Option{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := apptest.New("loc-1")
			app.Responses["/calendars/"] = tt.body

			options, err := common.CalendarOptions(app)(ctx, action.Values{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, options)

			require.Len(t, app.Requests, 1)
			assert.Equal(t, highlevel.Params{"locationId": "loc-1"}, app.Requests[0].Params)
		})
	}
}

func TestUserOptions(t *testing.T) {
	app := apptest.New("loc-1")
	app.Responses["/users/"] = `{"users":[{"id":"u1","name":"Ada"},{"id":"u2","name":"Grace"}]}`

	options, err := common.UserOptions(app)(context.Background(), action.Values{})
	require.NoError(t, err)
	assert.Equal(t, []action.Option{{Label: "Ada", Value: "u1"}, {Label: "Grace", Value: "u2"}}, options)

	app.Responses["/users/"] = `{}`
	options, err = common.UserOptions(app)(context.Background(), action.Values{})
	require.NoError(t, err)
	assert.Equal(t, []action.Option{}, options)
}

func TestContactOptions(t *testing.T) {
	app := apptest.New("loc-1")
	app.Responses["/contacts/"] = `{"contacts":[{"id":"c1","email":"a@example.com"},{"id":17,"email":"b@example.com"}]}`

	options, err := common.ContactOptions(app)(context.Background(), action.Values{})
	require.NoError(t, err)
	assert.Equal(t, []action.Option{
		{Label: "a@example.com", Value: "c1"},
		{Label: "b@example.com", Value: "17"},
	}, options)
}

func TestAppointmentOptions(t *testing.T) {
	app := apptest.New("loc-1")
	app.Responses["/contacts/c1/appointments"] = `{"events":[{"id":1,"title":"Consult"}]}`

	options, err := common.AppointmentOptions(app, "c1")(context.Background(), action.Values{})
	require.NoError(t, err)
	assert.Equal(t, []action.Option{{Label: "Consult", Value: "1"}}, options)
	assert.Equal(t, highlevel.Params{"contactId": "c1"}, app.Requests[0].Params)

	options, err = common.AppointmentOptions(app, "c2")(context.Background(), action.Values{})
	require.NoError(t, err)
	assert.Equal(t, []action.Option{}, options)
}

func TestTemplateOptions(t *testing.T) {
	app := apptest.New("loc-1")
	app.Responses["/locations/loc-1/templates"] = `{"templates":[{"id":"t1","name":"Welcome"}]}`

	options, err := common.TemplateOptions(app, "sms")(context.Background(), action.Values{})
	require.NoError(t, err)
	assert.Equal(t, []action.Option{{Label: "Welcome", Value: "t1"}}, options)
	assert.Equal(t, highlevel.Params{"originId": "loc-1", "type": "sms"}, app.Requests[0].Params)
}

func TestOptionsPropagateErrors(t *testing.T) {
	upstream := errors.New("401 unauthorized")
	app := apptest.New("loc-1")
	app.Errors["/calendars/"] = upstream

	_, err := common.CalendarOptions(app)(context.Background(), action.Values{})
	assert.ErrorIs(t, err, upstream)
}
