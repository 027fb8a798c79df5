package action_sendnewmessage

import (
	"context"
	"fmt"
	"maps"

	"github.com/ethanbaker/highlevel/internal/actions/common"
	"github.com/ethanbaker/highlevel/pkg/action"
)

// Action sends an outbound conversation message to a contact
type Action struct {
	app common.App
}

// New creates the action bound to app
func New(app common.App) *Action {
	return &Action{app: app}
}

func (a *Action) Definition() action.Definition {
	props := append(common.Props(),
		action.Prop{
			Name:        "type",
			Type:        action.PropTypeString,
			Label:       "Type",
			Description: "Type of message being sent",
			Options:     action.StringOptions(MESSAGE_TYPES...),
			ReloadProps: true,
		},
		action.Prop{
			Name:        "contactId",
			Type:        action.PropTypeString,
			Label:       "Contact ID",
			Description: "ID of the contact receiving the message",
			OptionsFunc: common.ContactOptions(a.app),
			ReloadProps: true,
		},
		action.Prop{
			Name:        "attachments",
			Type:        action.PropTypeStringArray,
			Label:       "Attachments",
			Description: "Array of attachment URLs",
			Optional:    true,
		},
		action.Prop{
			Name:        "replyMessageId",
			Type:        action.PropTypeString,
			Label:       "Reply Message ID",
			Description: "ID of the message being replied to",
			Optional:    true,
		},
		action.Prop{
			Name:        "scheduledTimestamp",
			Type:        action.PropTypeInteger,
			Label:       "Scheduled Timestamp",
			Description: "UTC Timestamp (in seconds) at which the message should be scheduled",
			Optional:    true,
		},
		action.Prop{
			Name:     "conversationProviderId",
			Type:     action.PropTypeString,
			Label:    "ID of conversation provider",
			Optional: true,
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

// AdditionalProps derives the props that depend on the message type and contact
func (a *Action) AdditionalProps(values action.Values) []action.Prop {
	msgType := values.String("type")
	contactID := values.String("contactId")

	var props []action.Prop
	if msgType == TYPE_EMAIL {
		props = append(props, emailProps()...)
	} else {
		props = append(props, action.Prop{
			Name:        "message",
			Type:        action.PropTypeString,
			Label:       "Message Content",
			Description: "Text content of the message",
		})
	}

	if msgType == TYPE_SMS || msgType == TYPE_WHATSAPP {
		props = append(props, phoneProps()...)
	}

	if contactID != "" {
		props = append(props, action.Prop{
			Name:        "appointmentId",
			Type:        action.PropTypeString,
			Label:       "Appointment ID",
			Description: "ID of the associated appointment",
			Optional:    true,
			OptionsFunc: common.AppointmentOptions(a.app, contactID),
		})
	}

	if templateType, ok := TEMPLATE_TYPES[msgType]; ok {
		props = append(props, action.Prop{
			Name:        "templateId",
			Type:        action.PropTypeString,
			Label:       "Template ID",
			Description: "ID of message template",
			Optional:    true,
			OptionsFunc: common.TemplateOptions(a.app, templateType),
		})
	}

	return props
}

func (a *Action) Run(ctx context.Context, exec *action.Execution, values action.Values) (any, error) {
	data := maps.Clone(map[string]any(values))
	delete(data, "app")

	resp, err := a.app.SendNewMessage(ctx, data)
	if err != nil {
		return nil, err
	}

	exec.Export(action.SummaryKey, fmt.Sprintf("Successfully sent message (messageId: %s)", resp.MessageID()))
	return resp, nil
}

func emailProps() []action.Prop {
	return []action.Prop{
		{
			Name:        "emailFrom",
			Type:        action.PropTypeString,
			Label:       "Email From",
			Description: "Email address to send from",
		},
		{
			Name:        "subject",
			Type:        action.PropTypeString,
			Label:       "Subject",
			Description: "Subject line for email messages",
		},
		{
			Name:        "html",
			Type:        action.PropTypeString,
			Label:       "HTML Content",
			Description: "HTML content of the message",
		},
		{
			Name:        "emailTo",
			Type:        action.PropTypeString,
			Label:       "Email To",
			Description: "Email address to send to, if different from contact's primary email. This should be a valid email address associated with the contact.",
			Optional:    true,
		},
		{
			Name:        "emailReplyMode",
			Type:        action.PropTypeString,
			Label:       "Email Reply Mode",
			Description: "Mode for email replies",
			Options:     action.StringOptions(EMAIL_REPLY_MODES...),
			Optional:    true,
		},
		{
			Name:        "threadId",
			Type:        action.PropTypeString,
			Label:       "Thread ID",
			Description: "ID of message thread. For email messages, this is the message ID that contains multiple email messages in the thread",
			Optional:    true,
		},
		{
			Name:        "emailCc",
			Type:        action.PropTypeStringArray,
			Label:       "Email CC",
			Description: "Array of CC email addresses",
			Optional:    true,
		},
		{
			Name:        "emailBcc",
			Type:        action.PropTypeStringArray,
			Label:       "Email BCC",
			Description: "Array of BCC email addresses",
			Optional:    true,
		},
	}
}

func phoneProps() []action.Prop {
	return []action.Prop{
		{
			Name:        "fromNumber",
			Type:        action.PropTypeString,
			Label:       "From Number",
			Description: "Phone number used as the sender number for outbound messages",
		},
		{
			Name:        "toNumber",
			Type:        action.PropTypeString,
			Label:       "To Number",
			Description: "Recipient phone number for outbound messages",
		},
	}
}
