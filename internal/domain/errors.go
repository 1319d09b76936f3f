package domain

import "errors"

var (
	// ErrUsernameTaken indicates that the username is already registered.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrForbidden indicates that the acting user is not the post's author.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a missing or malformed form field. It is recovered
// at the request boundary and rendered back into the originating form.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
