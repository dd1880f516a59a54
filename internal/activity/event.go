// Package activity keeps a short in-memory history of fetch results and
// navigation for the debug overlay. Nothing here is persisted.
package activity

import "time"

// Kind identifies what happened. Dot-delimited: "<subsystem>.<action>".
type Kind string

const (
	KindFetchComplete Kind = "fetch.complete"
	KindFetchError    Kind = "fetch.error"
	KindDropped       Kind = "fetch.dropped" // result arrived for an unmounted view
	KindNavigate      Kind = "nav.push"
	KindBack          Kind = "nav.back"
)

// Event is one activity record. Only Kind and Time are always set.
type Event struct {
	Time  time.Time
	Kind  Kind
	View  int    // mount ID the event concerns
	Route string // route path, for navigation and lookups
	Count int    // entries received
	Dur   time.Duration
	Err   string
}
