// Package api implements the HTTP handlers for the descriptor catalog:
// noun and category lookup, descriptor validation, the backref audit,
// and version negotiation. Handlers translate domain errors into
// sanitized HTTP responses; detailed errors go to the logs only.
package api
