package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/ynab-payee-manager/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case code == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, detail)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		if detail == "" {
			detail = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, detail)
	}
}

// errorDetail extracts the human readable part of the API error envelope
// {"error": {"id": ..., "name": ..., "detail": ...}}. Bodies in another shape
// are returned trimmed.
func errorDetail(body []byte) string {
	var envelope models.APIErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Name != "" {
		if envelope.Error.Detail != "" {
			return envelope.Error.Name + ": " + envelope.Error.Detail
		}
		return envelope.Error.Name
	}

	return strings.TrimSpace(string(body))
}
