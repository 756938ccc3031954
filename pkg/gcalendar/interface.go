package gcalendar

import "context"

// ICalendar is the subset of the Calendar API the exporter needs.
type ICalendar interface {
	CreateAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error)
}
