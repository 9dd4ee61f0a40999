// Package server runs the HTTP transport together with the background
// workers and shuts both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
