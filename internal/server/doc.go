// Package server runs the browser UI over HTTP.
//
// The server lives until its context is cancelled and then shuts down
// gracefully, giving in-flight requests a bounded amount of time to finish.
package server
