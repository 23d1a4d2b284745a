// Package server runs the loopback HTTP server of the secure store and
// supervises its graceful shutdown.
package server
