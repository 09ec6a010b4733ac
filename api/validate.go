package api

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/meridianmade/agency-site-backend/errs"
)

// Deliberately loose: one @, something on both sides, a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// decodeJSONBody decodes the request body into dst. Unknown fields are
// rejected so typos in the admin UI surface as 400s instead of silently
// dropped updates.
func decodeJSONBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errs.NewMalformedPayloadError("JSON", err)
	}
	return nil
}

func orderOrDefault(order *int) int {
	if order == nil {
		return 1
	}
	return *order
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}
