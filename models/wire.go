package models

import (
	"encoding/json"
	"strings"
	"time"
)

// NoteWire mirrors one note as serialised by the backend. Depending on the
// deployment the backend leaks column-style names (ID_NOTE, CREATED_AT) or
// camel case, and tags arrive either as plain strings or as objects. Every
// observed spelling is declared here and CanonicalNote picks the first one
// that is set. All of the shape sniffing lives in this file; call sites work
// with the canonical Note only.
//
// Go's JSON decoder matches keys case-insensitively, so TITLE/title and
// CREATED_AT/created_at collapse onto one field each; only spellings that
// differ beyond case need their own field.
type NoteWire struct {
	ID          WireID `json:"id"`
	IDNote      WireID `json:"idNote"`
	IDNoteSnake WireID `json:"id_note"`

	Title   string `json:"title"`
	Content string `json:"content"`

	Tags []WireTag `json:"tags"`

	// CreatedAt carries an already display-formatted timestamp.
	CreatedAt string `json:"createdAt"`
	// CreatedAtRaw carries a machine timestamp (RFC 3339 or epoch millis)
	// that still needs formatting.
	CreatedAtRaw WireTime `json:"created_at"`
}

// CanonicalNote maps the wire shape onto the canonical Note. now supplies the
// creation timestamp when the backend sent none.
func (w NoteWire) CanonicalNote(now time.Time) Note {
	id := string(w.ID)
	if id == "" {
		id = string(w.IDNote)
	}
	if id == "" {
		id = string(w.IDNoteSnake)
	}

	tags := make([]string, 0, len(w.Tags))
	for _, t := range w.Tags {
		tags = append(tags, string(t))
	}

	createdAt := w.CreatedAt
	if createdAt == "" {
		createdAt = w.CreatedAtRaw.Display()
	}
	if createdAt == "" {
		createdAt = DisplayTime(now)
	}

	return Note{
		ID:        id,
		Title:     w.Title,
		Content:   w.Content,
		Tags:      tags,
		CreatedAt: createdAt,
	}
}

// WireID is an identifier that the backend serialises either as a JSON number
// or as a string. It always decodes to the stringified form.
type WireID string

func (w *WireID) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*w = WireID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*w = WireID(s)
	return nil
}

// WireTag is a tag label that arrives either as a plain string or as an
// object carrying the label under `nome` or `name`.
type WireTag string

func (t *WireTag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = WireTag(s)
		return nil
	}

	var obj struct {
		Nome string `json:"nome"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err == nil {
		switch {
		case obj.Nome != "":
			*t = WireTag(obj.Nome)
			return nil
		case obj.Name != "":
			*t = WireTag(obj.Name)
			return nil
		}
	}

	*t = WireTag(strings.Trim(string(b), `"`))
	return nil
}

// WireTime is a timestamp that arrives either as an RFC 3339 string or as
// epoch milliseconds. The zero value means "not sent".
type WireTime struct {
	raw    string
	parsed time.Time
}

func (t *WireTime) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		millis, convErr := n.Int64()
		if convErr != nil {
			return convErr
		}
		t.raw = n.String()
		t.parsed = time.UnixMilli(millis)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t.raw = s
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		t.parsed = parsed
	}
	return nil
}

// Display returns the timestamp in the display layout. If the value could not
// be parsed the raw string is returned verbatim; if nothing was sent the
// result is empty.
func (t WireTime) Display() string {
	if !t.parsed.IsZero() {
		return DisplayTime(t.parsed)
	}
	return t.raw
}

// AuthWire is the body of successful POST /auth/login and /auth/register
// responses.
type AuthWire struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
}

// Session converts the auth response into a client session.
func (a AuthWire) Session() Session {
	return Session{
		Token: a.Token,
		User:  User{UserID: a.UserID, Name: a.Name, Email: a.Email},
	}
}

// NoteCreatedWire is the body of a successful POST /notes response.
type NoteCreatedWire struct {
	ID WireID `json:"id"`
}

// TagWire is one tag as returned by GET /tags.
type TagWire struct {
	ID   WireID `json:"id"`
	Nome string `json:"nome"`
	Name string `json:"name"`
}

// Label returns the tag's display label regardless of which field the
// backend used.
func (t TagWire) Label() string {
	if t.Nome != "" {
		return t.Nome
	}
	return t.Name
}
