package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/annotai/notes-client/internal/config"
	"github.com/annotai/notes-client/internal/logger"
	"github.com/annotai/notes-client/internal/utils"
	"github.com/annotai/notes-client/models"
)

// healthPath is the backend's readiness endpoint used by the liveness probe.
const healthPath = "/q/health/ready"

type httpNoteGateway struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPNoteGateway constructs the HTTP/REST implementation of
// [NoteGateway]. It normalises both configured base URLs, probes the primary
// backend once, and configures the underlying HTTP client with the selected
// base URL and the request timeout.
//
// The primary backend is considered alive when the health endpoint answers
// with any status below 500 within adapterCfg.ProbeTimeout; otherwise the
// fallback address is used. An empty primary address skips the probe.
func NewHTTPNoteGateway(adapterCfg config.Adapter, log *logger.Logger) (NoteGateway, error) {
	fallbackURL, err := normalizeBaseURL(adapterCfg.FallbackAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback address: %w", err)
	}

	baseURL := fallbackURL
	if strings.TrimSpace(adapterCfg.PrimaryAddress) != "" {
		primaryURL, err := normalizeBaseURL(adapterCfg.PrimaryAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid primary address: %w", err)
		}
		if isAlive(primaryURL, adapterCfg.ProbeTimeout) {
			baseURL = primaryURL
		}
	}

	log.Info().Str("base_url", baseURL).Msg("note backend selected")

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpNoteGateway{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// isAlive reports whether the backend at baseURL answers its health endpoint.
// Any HTTP response below 500 counts as alive; a 5xx means the backend is up
// but broken, and must not be selected.
func isAlive(baseURL string, timeout time.Duration) bool {
	probe := utils.NewHTTPClient()
	resp, err := probe.SetTimeout(timeout).R().Get(baseURL + healthPath)
	if err != nil {
		return false
	}
	return resp.StatusCode() < 500
}

// SetToken implements [NoteGateway]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpNoteGateway) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [NoteGateway]. It returns the bearer token currently held
// by the gateway, or an empty string if none has been set.
func (h *httpNoteGateway) Token() string {
	return h.token
}

// Login implements [NoteGateway]. It POSTs the credentials to
// POST /auth/login without an Authorization header, stores the returned token
// via SetToken, and returns the session. Returns an error if the request
// fails, the server returns a non-2xx status, or the response carries no
// token.
func (h *httpNoteGateway) Login(ctx context.Context, email, password string) (models.Session, error) {
	var auth models.AuthWire

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "senha": password}).
		SetResult(&auth).
		Post("/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	if auth.Token == "" {
		return models.Session{}, fmt.Errorf("login response carried no token")
	}

	h.SetToken(auth.Token)
	return auth.Session(), nil
}

// Register implements [NoteGateway]. It POSTs the new account data to
// POST /auth/register, stores the returned token via SetToken, and returns
// the session.
func (h *httpNoteGateway) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	var auth models.AuthWire

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"nome": name, "email": email, "senha": password}).
		SetResult(&auth).
		Post("/auth/register")
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	if auth.Token == "" {
		return models.Session{}, fmt.Errorf("register response carried no token")
	}

	h.SetToken(auth.Token)
	return auth.Session(), nil
}

// ListNotes implements [NoteGateway]. It GETs /notes and maps every entry
// onto the canonical Note shape via [models.NoteWire.CanonicalNote].
func (h *httpNoteGateway) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var wires []models.NoteWire
	if err = json.Unmarshal(resp.Body(), &wires); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	now := time.Now()
	notes := make([]models.Note, 0, len(wires))
	for _, w := range wires {
		notes = append(notes, w.CanonicalNote(now))
	}
	return notes, nil
}

// GetNote implements [NoteGateway]. It GETs /notes/{id} and returns the
// canonical Note.
func (h *httpNoteGateway) GetNote(ctx context.Context, id string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/notes/" + url.PathEscape(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var wire models.NoteWire
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}

	return wire.CanonicalNote(time.Now()), nil
}

// CreateNote implements [NoteGateway]. It POSTs the payload to /notes and
// extracts the server-issued id from the response. Some backend versions
// return `{"id": <number>}`, older ones return the bare id; both are
// accepted.
func (h *httpNoteGateway) CreateNote(ctx context.Context, payload models.NotePayload) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/notes")
	if err != nil {
		return "", fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created models.NoteCreatedWire
	if err = json.Unmarshal(resp.Body(), &created); err == nil && created.ID != "" {
		return string(created.ID), nil
	}

	id := strings.Trim(strings.TrimSpace(string(resp.Body())), `"`)
	if id == "" {
		return "", fmt.Errorf("create note response carried no id")
	}
	return id, nil
}

// UpdateNote implements [NoteGateway]. It PUTs the payload to /notes/{id}.
func (h *httpNoteGateway) UpdateNote(ctx context.Context, id string, payload models.NotePayload) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put("/notes/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [NoteGateway]. It sends DELETE /notes/{id}.
func (h *httpNoteGateway) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/notes/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTags implements [NoteGateway]. It GETs /tags and returns the labels.
func (h *httpNoteGateway) ListTags(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/tags")
	if err != nil {
		return nil, fmt.Errorf("list tags request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var wires []models.TagWire
	if err = json.Unmarshal(resp.Body(), &wires); err != nil {
		return nil, fmt.Errorf("decode tags response: %w", err)
	}

	labels := make([]string, 0, len(wires))
	for _, w := range wires {
		labels = append(labels, w.Label())
	}
	return labels, nil
}

// CreateTag implements [NoteGateway]. It POSTs the label to /tags.
func (h *httpNoteGateway) CreateTag(ctx context.Context, name string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"nome": name}).
		Post("/tags")
	if err != nil {
		return fmt.Errorf("create tag request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNoteGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
