package action_getcalendarfreeslots

const (
	KEY     = "highlevel_oauth-get-calendar-free-slots"
	NAME    = "Get Free Slots"
	VERSION = "0.0.2"

	DESCRIPTION = "Retrieves available time slots from a calendar [See the documentation](https://highlevel.stoplight.io/docs/integrations/7f694ee8bd969-get-free-slots)"

	DEFAULT_TIMEZONE = "America/New_York"
)

// TIMEZONES are the zones offered for the timezone prop
var TIMEZONES = []string{
	"America/New_York",
	"America/Chicago",
	"America/Denver",
	"America/Los_Angeles",
	"America/Phoenix",
	"America/Anchorage",
	"Pacific/Honolulu",
	"Europe/London",
	"Europe/Paris",
	"Europe/Berlin",
	"Europe/Rome",
	"Europe/Madrid",
	"Asia/Tokyo",
	"Asia/Shanghai",
	"Asia/Kolkata",
	"Asia/Dubai",
	"Australia/Sydney",
	"Australia/Melbourne",
	"UTC",
}
