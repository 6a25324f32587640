// Package api provides the HTTP layer for the LexAssist services.
//
// Each of the three services (advisor, kanoon, news) gets its own Huma API
// instance on its own chi router and port; they share the middleware stack
// and the JSON error model but no runtime state.
package api
