package service

import "errors"

// Domain errors mapped to HTTP statuses in the handlers package.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidToken      = errors.New("invalid token")
	ErrProjectNotFound   = errors.New("project not found")
	ErrTitleRequired     = errors.New("project title is required")
	ErrNotOwner          = errors.New("only the project owner may do this")
	ErrOwnHelp           = errors.New("cannot apply to your own project")
	ErrHelpNotFound      = errors.New("help request not found")
	ErrInvalidHelpStatus = errors.New("invalid help status: must be pending, matched, or rejected")
)
