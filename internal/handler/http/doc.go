// Package http implements the browser UI of the application.
//
// It serves two routed pages sharing a navbar (payees and transactions) and a
// small JSON API over the same services. Request tracing, access logging and
// response compression are handled by middleware before requests reach the
// service layer.
package http
