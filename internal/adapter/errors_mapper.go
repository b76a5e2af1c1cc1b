package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and otherwise wraps the sentinel
// matching the status code. The text after the sentinel is the "error" field
// of the JSON body, or the raw body when it is not JSON.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	msg := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode(), msg)
	}
}

func errorMessage(resp *resty.Response) string {
	body := resp.Body()

	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return msg
}

// ServerMessage extracts the server's message from an error produced by
// mapHTTPError. It returns "" for any other error.
func ServerMessage(err error) string {
	for _, sentinel := range []error{ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrInternalServerError} {
		if errors.Is(err, sentinel) {
			prefix := sentinel.Error() + ": "
			if msg, ok := strings.CutPrefix(err.Error(), prefix); ok {
				return msg
			}
		}
	}
	return ""
}
