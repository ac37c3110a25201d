package adapter

import "errors"

var (
	ErrRequestFailed     = errors.New("request failed")
	ErrTimeout           = errors.New("request timed out")
	ErrTransportSecurity = errors.New("transport security failure")
)
