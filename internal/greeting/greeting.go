// Package greeting validates greeting requests and builds greeting responses.
package greeting

import (
	"errors"
	"net/url"
)

// MissingParameterMessage is the body returned to clients that omit the name parameter.
const MissingParameterMessage = "Missing 'name' parameter"

// ErrMissingParameter is returned when the name parameter is absent or empty.
var ErrMissingParameter = errors.New("missing name parameter")

// Params holds the query parameters consumed by the greeting endpoint.
// A nil Name means the parameter was not sent at all.
type Params struct {
	Name *string
}

// Response represents the greeting response
type Response struct {
	Message string `json:"message"`
}

// ParamsFromQuery extracts the name parameter from decoded query values.
// When the key repeats, the first value wins.
func ParamsFromQuery(values url.Values) Params {
	vs, ok := values["name"]
	if !ok || len(vs) == 0 {
		return Params{}
	}
	name := vs[0]
	return Params{Name: &name}
}

// Validate returns the name unchanged if it is present and non-empty.
// No trimming is done: a whitespace-only name is valid.
func Validate(p Params) (string, error) {
	if p.Name == nil || *p.Name == "" {
		return "", ErrMissingParameter
	}
	return *p.Name, nil
}

// ValidateQuery extracts and validates the name parameter in one step.
func ValidateQuery(values url.Values) (string, error) {
	return Validate(ParamsFromQuery(values))
}

// NewResponse builds the greeting for a validated name.
func NewResponse(name string) Response {
	return Response{
		Message: "Hello, " + name + "!",
	}
}
