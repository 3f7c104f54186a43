package vo

import "errors"

var ErrDirectoryUserNotFound = errors.New("directory user not found")
