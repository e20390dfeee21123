package storefront

// User is the read-only profile slice the storefront consumes: enough to
// prefill checkout and scope order history.
type User struct {
	FirstName string
	LastName  string
	Email     string
}

// IdentityProvider supplies the signed-in user, if any. The concrete
// implementation lives outside this package.
type IdentityProvider interface {
	CurrentUser() (User, bool)
}

// StaticIdentity is a fixed IdentityProvider for embedding and tests.
type StaticIdentity struct {
	User     User
	SignedIn bool
}

// CurrentUser implements IdentityProvider.
func (s StaticIdentity) CurrentUser() (User, bool) {
	return s.User, s.SignedIn
}
