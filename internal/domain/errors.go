package domain

import "fmt"

// FetchError unifies every failure mode of the status endpoint —
// transport error, bad HTTP status, undecodable body — so the caller
// has a single handling path at this boundary. The access token is a
// header-only concern of the client and never appears here.
type FetchError struct {
	Endpoint string
	FromDate int64
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s?from_date=%d: %v", e.Endpoint, e.FromDate, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MissingKeyError reports a required key absent from a response value.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no key %q in response", e.Key)
}

// TypeMismatchError reports a response value of the wrong type.
type TypeMismatchError struct {
	What string
	Want string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s is not %s", e.What, e.Want)
}

// UnknownStatusError reports a status value outside the verdict table.
// Undocumented statuses are surfaced rather than dropped, so an
// upstream API change does not go unnoticed.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("undocumented status %q", e.Status)
}
