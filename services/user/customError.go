package user

import "errors"

// ErrEmailTaken signals that registration used an address that already
// has an account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrInvalidCredentials signals a failed sign-in. The same error covers
// unknown email and wrong password so the response does not reveal which.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrUserNotFound signals a lookup for an account that does not exist.
var ErrUserNotFound = errors.New("user not found")
