package client

import "errors"

var (
	ErrRouteBlocked     = errors.New("route is not reachable in the current session state")
	ErrInputRequired    = errors.New("interactive input required")
	ErrPasswordRequired = errors.New("new password required")
)
