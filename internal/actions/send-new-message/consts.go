package action_sendnewmessage

const (
	KEY     = "highlevel_oauth-send-new-message"
	NAME    = "Send New Message"
	VERSION = "0.0.1"

	DESCRIPTION = "Sends a new message to a contact on HighLevel. [See the documentation](https://highlevel.stoplight.io/docs/integrations/4c8362223c17b-create-contact)"
)

// Message types
const (
	TYPE_SMS       = "SMS"
	TYPE_EMAIL     = "Email"
	TYPE_WHATSAPP  = "WhatsApp"
	TYPE_IG        = "IG"
	TYPE_FB        = "FB"
	TYPE_CUSTOM    = "Custom"
	TYPE_LIVE_CHAT = "Live_Chat"
)

var MESSAGE_TYPES = []string{TYPE_SMS, TYPE_EMAIL, TYPE_WHATSAPP, TYPE_IG, TYPE_FB, TYPE_CUSTOM, TYPE_LIVE_CHAT}

// TEMPLATE_TYPES maps the message types that support templates to the API template type
var TEMPLATE_TYPES = map[string]string{
	TYPE_EMAIL:    "email",
	TYPE_SMS:      "sms",
	TYPE_WHATSAPP: "whatsapp",
}

var EMAIL_REPLY_MODES = []string{"reply", "reply_all"}
