// Package middleware groups the Fiber middleware the server installs
// globally: rayid assigns every request a trace id and echoes it back in
// the response, auth gates the API behind an X-Api-Key header when a key
// is configured. Both are wired up once during server startup.
package middleware
