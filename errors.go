package forgegate

import (
	"net/http"

	"github.com/writeas/impart"
)

// Commonly returned HTTP errors
var (
	ErrMissingCodeOrState = impart.HTTPError{Status: http.StatusBadRequest, Message: "Missing code or state parameter"}
	ErrInvalidState       = impart.HTTPError{Status: http.StatusBadRequest, Message: "Invalid state parameter"}
	ErrMissingRedirectURI = impart.HTTPError{Status: http.StatusBadRequest, Message: "Missing redirect_uri parameter"}
	ErrInvalidRedirectURI = impart.HTTPError{Status: http.StatusBadRequest, Message: "redirect_uri must be an absolute URL"}
	ErrNoAccessToken      = impart.HTTPError{Status: http.StatusUnauthorized, Message: "Missing access token."}
	ErrBadAccessToken     = impart.HTTPError{Status: http.StatusUnauthorized, Message: "Invalid access token."}
)

// providerError mirrors the provider's error parameters for the case where
// no usable redirect target is known, so they can only be reported to the
// broker's direct caller.
type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}
