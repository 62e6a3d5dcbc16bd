package models

// Reminder is a calendar reminder owned by one user and optionally linked to
// a note. The link is not enforced: the note may be deleted while the
// reminder remains, and the dangling NoteID is tolerated.
type Reminder struct {
	// ID is derived from the creation time (unix milliseconds), which keeps
	// ids monotonically increasing within a session.
	ID int64 `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Date is an ISO calendar date, YYYY-MM-DD.
	Date string `json:"date"`

	// NoteID references the note this reminder was created for.
	NoteID string `json:"noteId"`
}
