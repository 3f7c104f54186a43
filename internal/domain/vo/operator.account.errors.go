package vo

import "errors"

var ErrOperatorNotFound = errors.New("operator not found")
var ErrEmailAlreadyUsed = errors.New("email already used")
var ErrInvalidOperatorEmail = errors.New("invalid operator email")
var ErrInvalidOperatorRole = errors.New("invalid operator role")
var ErrWeakPassword = errors.New("weak password")
