package wordnik

import (
	"errors"
	"fmt"
)

// Kind classifies why a remote call produced no usable value.
type Kind int

const (
	// KindTransport means the request failed or the server answered non-200.
	KindTransport Kind = iota + 1
	// KindDecode means the payload did not have the expected JSON shape.
	KindDecode
	// KindEmpty means the call succeeded but returned nothing usable.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrNoResults is wrapped by every KindEmpty FetchError.
var ErrNoResults = errors.New("no results")

// FetchError wraps a failed call to one endpoint.
type FetchError struct {
	Kind     Kind
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *FetchError of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}
