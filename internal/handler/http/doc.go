// Package http implements the watch daemon's local HTTP surface.
//
// It serves Prometheus metrics, a health document derived from the session
// view and the build version. Every request gets a request id and an access
// log line.
package http
