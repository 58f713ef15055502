// Package http implements the HTTP transport layer of the credential API.
//
// It exposes route wiring, request handlers, and middleware. Every request
// body that carries an encrypted envelope is unwrapped before it reaches a
// handler, and every domain response is wrapped again on the way out.
// Tracing, access logging, metrics and role-based access control are
// handled here before requests are delegated to the service layer.
package http
