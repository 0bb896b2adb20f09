package peoplesoft

import "errors"

// ErrIdentifierMismatch is wrapped in an UpstreamError when the live backend
// returns a record for a different employee than the one requested.
var ErrIdentifierMismatch = errors.New("upstream returned a record for a different employee")

// InvalidCredentialsError is returned by Login when the supplied pair does
// not exactly match the configured service credential.
type InvalidCredentialsError struct {
	Username string
}

func (e InvalidCredentialsError) Error() string {
	return "invalid PeopleSoft credentials for user " + e.Username
}

// NotFoundError is returned by a live backend for unknown employee
// identifiers. The simulated variant never raises it.
type NotFoundError struct {
	EmployeeID string
}

func (e NotFoundError) Error() string {
	return "employee " + e.EmployeeID + " not found in PeopleSoft"
}

// UpstreamError covers transport and protocol failures talking to a live
// backend on anything other than the connectivity check.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	return "peoplesoft " + e.Op + ": upstream failure: " + e.Err.Error()
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

// UnreachableError is raised by the connectivity check when the legacy
// endpoint cannot be reached at all. Retrying is a caller concern.
type UnreachableError struct {
	Endpoint string
	Err      error
}

func (e UnreachableError) Error() string {
	return "peoplesoft endpoint " + e.Endpoint + " unreachable: " + e.Err.Error()
}

func (e UnreachableError) Unwrap() error {
	return e.Err
}
