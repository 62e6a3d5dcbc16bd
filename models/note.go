package models

import "time"

// DisplayTimeLayout is the human display format used for Note.CreatedAt.
// Timestamps are stored already formatted because the backend has no
// authoritative creation time for notes created offline.
const DisplayTimeLayout = "02/01/2006 15:04:05"

// DisplayTime formats t in the display layout used across the client.
func DisplayTime(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}

// Note is the canonical client-side note shape. Instances live either in the
// per-user live cache or in the trash partition, never in both.
type Note struct {
	// ID is a server-issued numeric identifier (stringified) for notes
	// created online, or a locally generated UUID for notes created offline.
	ID string `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Tags is an ordered list of labels. Deduplication and validation are a
	// presentation concern; the model stores whatever it is given.
	Tags []string `json:"tags"`

	// CreatedAt is a display-formatted timestamp (see DisplayTimeLayout).
	CreatedAt string `json:"createdAt"`

	// IsTrashed marks copies stored in the trash partition.
	IsTrashed bool `json:"isTrashed,omitempty"`
}

// NotePayload is the request body for note create and update calls:
// POST /notes and PUT /notes/{id}.
type NotePayload struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Payload returns the note's mutable fields as a gateway payload. Used when
// restoring from trash, which re-creates the note remotely.
func (n Note) Payload() NotePayload {
	return NotePayload{Title: n.Title, Content: n.Content, Tags: n.Tags}
}
