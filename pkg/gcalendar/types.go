package gcalendar

// AllDayEventRequest is the input for creating an all-day event.
type AllDayEventRequest struct {
	CalendarID  string // defaults to "primary"
	Summary     string
	Description string
	Date        string // YYYY-MM-DD
	ColorID     string // optional Google Calendar color id ("1".."11")
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string
}
