package httpapi

import (
	domprofile "github.com/nkuhub/infosearch/internal/domain/profile"
)

// Stable machine-readable error codes.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeNotFound          = "not_found"
	codeEngineUnavailable = "engine_unavailable"
	codeInternalError     = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type profilePayload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	College  string `json:"college"`
	Major    string `json:"major"`
	Grade    string `json:"grade"`
	Research string `json:"research"`
}

func profileToPayload(p domprofile.Profile) profilePayload {
	return profilePayload{
		Username: p.Username,
		Role:     string(p.Role),
		College:  p.College,
		Major:    p.Major,
		Grade:    p.Grade,
		Research: p.Research,
	}
}

func profileFromPayload(username string, in profilePayload) domprofile.Profile {
	return domprofile.Profile{
		Username: username,
		Role:     domprofile.ParseRole(in.Role),
		College:  in.College,
		Major:    in.Major,
		Grade:    in.Grade,
		Research: in.Research,
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
