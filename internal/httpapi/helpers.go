package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/scatterbrain-dev/scatterbrain/models"
)

// parsePlanID parses a {id} path value into a PlanId.
func parsePlanID(s string) (models.PlanId, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, models.ErrInvalidInput("invalid plan id %q", s)
	}
	return models.PlanId(n), nil
}

// decodeBody decodes a JSON request body into dst, reporting InvalidInput
// on malformed JSON rather than letting the zero value through silently.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return models.ErrInvalidInput("missing request body")
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return models.ErrInvalidInput("malformed request body: %v", err)
	}
	return nil
}

// parseIndexParam parses an Index wire string, surfacing the empty-string
// case as InvalidInput (the root is never addressable from outside).
func parseIndexParam(s string) (models.Index, error) {
	return models.ParseIndex(s)
}
