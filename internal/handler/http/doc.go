// Package http implements the TAXII 2.1 transport layer.
//
// Handlers parse TAXII parameters, call the service layer and render its
// results with the TAXII media type. Errors are mapped to statuses in one
// place; no access decision is taken here. Cross-cutting concerns such as
// bearer authentication, request tracing, access logging and response
// compression are handled by middleware.
package http
