// Package server runs the watch daemon's status listener.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown.
package server
