// Package server runs the credential API over HTTP and, when an address is
// set, the gRPC health endpoint next to it.
//
// Both listeners start together and stop together: a termination signal
// marks the health service NOT_SERVING, drains the HTTP server within the
// request timeout and then stops gRPC.
package server
