package highlevel

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID is an identifier HighLevel may encode as either a JSON string or number
type ID string

// UnmarshalJSON accepts strings and numbers, keeping a number's literal text
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(strings.TrimSpace(n.String()))
	return nil
}

// String returns the identifier as a string
func (id ID) String() string {
	return string(id)
}

/** Calendars */

type Calendar struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type CalendarsResponse struct {
	Calendars []Calendar `json:"calendars"`
}

// FreeSlotsResponse maps a date key to a record holding that date's slots.
// Other top-level keys (e.g. traceId) are passed through untouched
type FreeSlotsResponse map[string]any

// CountSlots totals the slots across every date key. Entries that are not
// objects or carry no slots list count as zero
func (r FreeSlotsResponse) CountSlots() int {
	count := 0
	for _, day := range r {
		record, ok := day.(map[string]any)
		if !ok {
			continue
		}
		if slots, ok := record["slots"].([]any); ok {
			count += len(slots)
		}
	}
	return count
}

/** Users */

type User struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

/** Contacts */

type Contact struct {
	ID    ID     `json:"id"`
	Email string `json:"email"`
}

type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}

type Appointment struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

type AppointmentsResponse struct {
	Events []Appointment `json:"events"`
}

/** Templates */

type Template struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type TemplatesResponse struct {
	Templates []Template `json:"templates"`
}

/** Conversations */

// MessageResponse is the raw send-message response
type MessageResponse map[string]any

// MessageID returns the messageId field, or "" when absent
func (r MessageResponse) MessageID() string {
	id, ok := r["messageId"]
	if !ok || id == nil {
		return ""
	}
	if s, ok := id.(string); ok {
		return s
	}
	b, err := json.Marshal(id)
	if err != nil {
		return ""
	}
	return string(b)
}
