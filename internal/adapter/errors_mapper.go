package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-jmap-sync/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if problem, ok := parseProblem(resp); ok {
			return fmt.Errorf("%w: %s: %s", ErrRequestFailed, problem.Type, problem.Detail)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrEndpointNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// parseProblem decodes an RFC 7807 body. Only bodies that carry a type are
// accepted.
func parseProblem(resp *resty.Response) (models.ProblemDetails, bool) {
	var problem models.ProblemDetails
	if err := json.Unmarshal(resp.Body(), &problem); err != nil || problem.Type == "" {
		return models.ProblemDetails{}, false
	}
	return problem, true
}
