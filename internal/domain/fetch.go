package domain

import "fmt"

// FetchErrorKind classifies why an upstream fetch failed.
type FetchErrorKind string

const (
	FetchTransport FetchErrorKind = "transport"
	FetchStatus    FetchErrorKind = "status"
	FetchParse     FetchErrorKind = "parse"
)

// FetchError wraps a failure at the fetcher boundary.
type FetchError struct {
	Source string
	Kind   FetchErrorKind
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// FetchResult carries fetched items or the reason there are none.
// Items is always empty when Err is set.
type FetchResult[T any] struct {
	Items []T
	Err   error
}

// Failed reports whether the fetch failed, as opposed to returning no items.
func (r FetchResult[T]) Failed() bool {
	return r.Err != nil
}

// Succeeded builds a successful result.
func Succeeded[T any](items []T) FetchResult[T] {
	return FetchResult[T]{Items: items}
}

// FailedWith builds a soft-failed result with no items.
func FailedWith[T any](err error) FetchResult[T] {
	return FetchResult[T]{Items: []T{}, Err: err}
}
