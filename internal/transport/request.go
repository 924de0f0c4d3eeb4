package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/teammap/pkg/errors"
)

// maxErrorBody caps how much of an error body is quoted in messages.
const maxErrorBody = 512

// DecodeResponse decodes a JSON response into target and closes the body.
func DecodeResponse(registry, url, method string, resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &errors.AuthenticationError{
			Registry: registry,
			Method:   method,
			Message:  resp.Status,
			Err:      apiError(registry, url, resp.StatusCode, body),
		}
	case resp.StatusCode == http.StatusNotFound:
		return apiError(registry, url, resp.StatusCode, body)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return apiError(registry, url, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", url, err)
	}
	return nil
}

func apiError(registry, url string, status int, body []byte) *errors.APIError {
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &errors.APIError{
		Registry:   registry,
		StatusCode: status,
		Message:    msg,
		Endpoint:   url,
	}
}
