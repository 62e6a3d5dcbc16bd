package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := readableMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// readableMessage extracts the most human-readable error text available from
// the response, in order of preference: a structured `error` field in a JSON
// body, the raw body text, the HTTP status text. The result is never empty.
func readableMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	if body != "" {
		var structured struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(resp.Body(), &structured); err == nil && structured.Error != "" {
			return structured.Error
		}
		return body
	}

	if st := http.StatusText(resp.StatusCode()); st != "" {
		return st
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode())
}
