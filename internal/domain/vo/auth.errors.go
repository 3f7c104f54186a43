package vo

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDependencyUnavailable = errors.New("dependency unavailable")
var ErrTokenNotRevocable = errors.New("token not revocable")
