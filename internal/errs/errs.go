package errs

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrForbidden = errors.New("access denied")
var ErrInvalidState = errors.New("invalid state")
var ErrNotFound = errors.New("not found")
var ErrPermissionDenied = errors.New("data access restricted")
var ErrNotification = errors.New("notification failed")

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailAlreadyExists = errors.New("email already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrDuplicateReceipt = errors.New("receipt number already exists")
