package auth

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64
}
