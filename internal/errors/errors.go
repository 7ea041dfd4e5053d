// Package errors provides custom error types for the application.
package errors

import "errors"

// Validation errors
var (
	ErrValidation          = errors.New("invalid request")
	ErrEmailRequired       = errors.New("user email is required")
	ErrNameRequired        = errors.New("name is required")
	ErrTeamRequired        = errors.New("team is required")
	ErrPlayerIDRequired    = errors.New("player id is required")
	ErrListIDRequired      = errors.New("list id is required")
	ErrTargetRequired      = errors.New("target data is required")
	ErrTargetIDRequired    = errors.New("target id is required")
	ErrInvalidRole         = errors.New("invalid role, must be coach, assistant or scout")
	ErrInvalidFixtureName  = errors.New("invalid fixture name")
	ErrCoachRoleSelfOnly   = errors.New("coach role can only be claimed for yourself")
	ErrUnknownAction       = errors.New("unknown action")
	ErrUnknownMethod       = errors.New("unknown method")
	ErrMissingPayload      = errors.New("missing JSON payload")
	ErrIdentityMismatch    = errors.New("identity does not match authenticated user")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidToken        = errors.New("invalid token")
	ErrAmbiguousListTarget = errors.New("team is required when more than one team is visible")
)

// Permission errors
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotCoach         = errors.New("only the team coach can assign roles")
	ErrTeamOwnedByOther = errors.New("team already exists and is owned by another coach")
	ErrListNotVisible   = errors.New("list belongs to a team you cannot access")
	ErrTeamNotVisible   = errors.New("you cannot access this team")
	ErrLeagueNotManaged = errors.New("player league is outside your managed leagues")
	ErrTargetNotOwned   = errors.New("you can only delete your own targets")
)

// Not found errors, returned by repositories and turned into status values by services.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrListNotFound    = errors.New("list not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrTargetNotFound  = errors.New("target not found")
	ErrFixtureNotFound = errors.New("fixture not found")
)

// Conflict errors, returned by repositories when a deterministic key is taken.
var (
	ErrTeamAlreadyExists = errors.New("team already exists")
)

// External source errors
var (
	ErrExternalFetch = errors.New("external source fetch failed")
	ErrMalformedXML  = errors.New("malformed source document")
	ErrMissingField  = errors.New("source document is missing a required field")
)

var validationErrors = []error{
	ErrValidation,
	ErrEmailRequired,
	ErrNameRequired,
	ErrTeamRequired,
	ErrPlayerIDRequired,
	ErrListIDRequired,
	ErrTargetRequired,
	ErrTargetIDRequired,
	ErrInvalidRole,
	ErrInvalidFixtureName,
	ErrCoachRoleSelfOnly,
	ErrUnknownAction,
	ErrUnknownMethod,
	ErrMissingPayload,
	ErrAmbiguousListTarget,
}

var permissionErrors = []error{
	ErrPermissionDenied,
	ErrNotCoach,
	ErrTeamOwnedByOther,
	ErrListNotVisible,
	ErrTeamNotVisible,
	ErrLeagueNotManaged,
	ErrTargetNotOwned,
}

// IsValidation reports whether err is caused by bad caller input.
func IsValidation(err error) bool {
	return matchesAny(err, validationErrors)
}

// IsPermission reports whether err is an authorization failure.
func IsPermission(err error) bool {
	return matchesAny(err, permissionErrors)
}

// IsExternal reports whether err comes from the sync source.
func IsExternal(err error) bool {
	return matchesAny(err, []error{ErrExternalFetch, ErrMalformedXML, ErrMissingField})
}

func matchesAny(err error, targets []error) bool {
	if err == nil {
		return false
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
