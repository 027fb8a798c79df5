package export

import (
	"fmt"
	"io"
	"log"
	"slices"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/ethanbaker/highlevel/pkg/highlevel"
)

const (
	PRODUCT_ID          = "-//ethanbaker//highlevel free slots//EN"
	DEFAULT_SLOT_LENGTH = 30 * time.Minute
	SLOT_SUMMARY        = "Free slot"
)

// FreeSlots converts a free-slots response into a calendar with one event per
// slot. Date keys are visited in order; entries without a slots list and slot
// values that are not RFC 3339 timestamps are skipped
func FreeSlots(resp highlevel.FreeSlotsResponse, calendarID string, slotLength time.Duration) *ics.Calendar {
	if slotLength <= 0 {
		slotLength = DEFAULT_SLOT_LENGTH
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(PRODUCT_ID)

	now := time.Now().UTC()

	dates := make([]string, 0, len(resp))
	for date := range resp {
		dates = append(dates, date)
	}
	slices.Sort(dates)

	for _, date := range dates {
		record, ok := resp[date].(map[string]any)
		if !ok {
			continue
		}
		slots, _ := record["slots"].([]any)

		for _, slot := range slots {
			value, ok := slot.(string)
			if !ok {
				continue
			}
			start, err := time.Parse(time.RFC3339, value)
			if err != nil {
				log.Printf("[EXPORT]: skipping slot %q on %s: %v", value, date, err)
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d@%s", calendarID, start.Unix(), "highlevel"))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(slotLength))
			event.SetSummary(SLOT_SUMMARY)
			event.SetDescription(fmt.Sprintf("Available on calendar %s", calendarID))
		}
	}

	return cal
}

// WriteFreeSlots serializes the free-slots calendar to w
func WriteFreeSlots(w io.Writer, resp highlevel.FreeSlotsResponse, calendarID string, slotLength time.Duration) error {
	_, err := io.WriteString(w, FreeSlots(resp, calendarID, slotLength).Serialize())
	return err
}
