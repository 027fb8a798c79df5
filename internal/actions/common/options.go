package common

import (
	"context"
	"net/url"

	"github.com/ethanbaker/highlevel/pkg/action"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
)

// CalendarOptions lists the location's active calendars
func CalendarOptions(app App) action.OptionsFunc {
	return func(ctx context.Context, values action.Values) ([]action.Option, error) {
		var out highlevel.CalendarsResponse
		err := app.MakeRequest(ctx, &highlevel.Request{
			Path:   "/calendars/",
			Params: highlevel.Params{"locationId": app.GetLocationID()},
		}, &out)
		if err != nil {
			return nil, err
		}

		options := []action.Option{}
		for _, cal := range out.Calendars {
			if cal.IsActive {
				options = append(options, action.Option{Label: cal.Name, Value: cal.ID.String()})
			}
		}
		return options, nil
	}
}

// UserOptions lists the location's users
func UserOptions(app App) action.OptionsFunc {
	return func(ctx context.Context, values action.Values) ([]action.Option, error) {
		var out highlevel.UsersResponse
		err := app.MakeRequest(ctx, &highlevel.Request{
			Path:   "/users/",
			Params: highlevel.Params{"locationId": app.GetLocationID()},
		}, &out)
		if err != nil {
			return nil, err
		}

		options := make([]action.Option, 0, len(out.Users))
		for _, user := range out.Users {
			options = append(options, action.Option{Label: user.Name, Value: user.ID.String()})
		}
		return options, nil
	}
}

// ContactOptions lists the location's contacts, labelled by email
func ContactOptions(app App) action.OptionsFunc {
	return func(ctx context.Context, values action.Values) ([]action.Option, error) {
		var out highlevel.ContactsResponse
		err := app.MakeRequest(ctx, &highlevel.Request{
			Path:   "/contacts/",
			Params: highlevel.Params{"locationId": app.GetLocationID()},
		}, &out)
		if err != nil {
			return nil, err
		}

		options := make([]action.Option, 0, len(out.Contacts))
		for _, contact := range out.Contacts {
			options = append(options, action.Option{Label: contact.Email, Value: contact.ID.String()})
		}
		return options, nil
	}
}

// AppointmentOptions lists the appointments of a contact
func AppointmentOptions(app App, contactID string) action.OptionsFunc {
	return func(ctx context.Context, values action.Values) ([]action.Option, error) {
		var out highlevel.AppointmentsResponse
		err := app.MakeRequest(ctx, &highlevel.Request{
			Path:   "/contacts/" + url.PathEscape(contactID) + "/appointments",
			Params: highlevel.Params{"contactId": contactID},
		}, &out)
		if err != nil {
			return nil, err
		}

		options := make([]action.Option, 0, len(out.Events))
		for _, event := range out.Events {
			options = append(options, action.Option{Label: event.Title, Value: event.ID.String()})
		}
		return options, nil
	}
}

// TemplateOptions lists the location's message templates of one type
// ("email", "sms" or "whatsapp")
func TemplateOptions(app App, templateType string) action.OptionsFunc {
	return func(ctx context.Context, values action.Values) ([]action.Option, error) {
		locationID := app.GetLocationID()

		var out highlevel.TemplatesResponse
		err := app.MakeRequest(ctx, &highlevel.Request{
			Path: "/locations/" + url.PathEscape(locationID) + "/templates",
			Params: highlevel.Params{
				"originId": locationID,
				"type":     templateType,
			},
		}, &out)
		if err != nil {
			return nil, err
		}

		options := make([]action.Option, 0, len(out.Templates))
		for _, template := range out.Templates {
			options = append(options, action.Option{Label: template.Name, Value: template.ID.String()})
		}
		return options, nil
	}
}
