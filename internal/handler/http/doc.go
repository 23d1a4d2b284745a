// Package http implements the loopback HTTP API of the secure store.
//
// The dashboard opens a session with a bearer token issued by the
// authentication system, then reads and writes sensitive entries and uses
// the standalone encrypt/decrypt entry points. Tracing, access logging and
// token verification are handled here before requests reach the service
// layer.
package http
