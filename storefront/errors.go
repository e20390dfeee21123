package storefront

import "errors"

var (
	// ErrEmptyCart blocks checkout submission before any network call.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrMissingFields blocks checkout submission when required form fields
	// are absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrNotFound marks a product or order that the remote store does not
	// have, as distinct from a transport failure.
	ErrNotFound = errors.New("not found")
	// ErrRemote covers transport failures and non-success responses. Nothing
	// is retried automatically.
	ErrRemote = errors.New("remote request failed")
	// ErrNotSignedIn gates the order-history view.
	ErrNotSignedIn = errors.New("not signed in")
	// ErrSuperseded reports a catalog fetch whose result was discarded
	// because a newer fetch started while it was in flight.
	ErrSuperseded = errors.New("fetch superseded")
)
