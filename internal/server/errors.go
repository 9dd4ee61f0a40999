package server

import "errors"

var (
	errNoHTTPHandler = errors.New("server: no HTTP handler to serve")
)
