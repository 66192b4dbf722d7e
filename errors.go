package authgate

import "errors"

var (
	// ErrUnknownAuthType is returned when Config.AuthType names no strategy variant.
	ErrUnknownAuthType = errors.New("unknown auth type")
	// ErrExcludedPathEmpty is returned when an exclusion entry is empty after trimming.
	ErrExcludedPathEmpty = errors.New("excluded path entry is empty")
	// ErrSessionNameRequired is returned when a session variant is selected without a cookie name.
	ErrSessionNameRequired = errors.New("session cookie name required")
	// ErrUserStoreRequired is returned when the selected variant needs a user store and none was wired.
	ErrUserStoreRequired = errors.New("user store required")
	// ErrSessionBackendRequired is returned when session_db_auth is selected without a persistent backend.
	ErrSessionBackendRequired = errors.New("persistent session backend required")
	// ErrBuilderUsed is returned when Build is called twice on the same Builder.
	ErrBuilderUsed = errors.New("builder already used")
)
