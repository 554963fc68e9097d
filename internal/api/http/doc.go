// Package http exposes the alarm service over a JSON REST API.
//
// The surface covers alarm CRUD and toggling, passage-selection settings,
// and the ringing episode endpoints that feed typed input to the
// verification gate. There is no dismiss endpoint: an alarm is dismissed
// only by completing its typing challenge.
package http
