// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting for the memory collection, export, and catalog
// endpoints. It adapts HTTP concerns to the internal services and maps
// service errors to safe client-facing responses.
package api
