// Package httpclient provides the network client used to query remote
// release indices. It owns all transport concerns (timeouts, connection
// pooling, client-side rate limiting); callers see a single Get operation
// that either returns body text or a structured network error.
package httpclient
