// Package ui provides the Bubble Tea TUI for bookfinder.
package ui

import (
	"time"

	"github.com/abelbrown/bookfinder/internal/activity"
	"github.com/abelbrown/bookfinder/internal/catalog"
	"github.com/abelbrown/bookfinder/internal/route"
)

// CatalogLoaded is sent when the catalog batch fetch finishes.
// ViewID names the catalog view that asked for it.
type CatalogLoaded struct {
	ViewID  int
	Entries []catalog.Entry
	Took    time.Duration
	Err     error
}

// VolumeLoaded is sent when a single-volume lookup finishes.
// ViewID names the detail view that asked for it.
type VolumeLoaded struct {
	ViewID int
	Entry  catalog.Entry
	Took   time.Duration
	Err    error
}

// Navigate asks the App to push a route onto the history.
type Navigate struct {
	Route route.Route
}

// Back asks the App to return to the previous history entry.
type Back struct{}

// resultEvent describes a fetch result for the activity ring. Kind is
// fetch.complete or fetch.error; the App overrides it when the result is
// dropped.
func resultEvent(msg any) (activity.Event, bool) {
	var (
		e   activity.Event
		err error
	)
	switch m := msg.(type) {
	case CatalogLoaded:
		e = activity.Event{View: m.ViewID, Route: route.Home.Path(), Count: len(m.Entries), Dur: m.Took}
		err = m.Err
	case VolumeLoaded:
		e = activity.Event{View: m.ViewID, Dur: m.Took}
		if m.Entry.ID != "" {
			e.Route = route.Book(m.Entry.ID).Path()
			e.Count = 1
		}
		err = m.Err
	default:
		return e, false
	}

	e.Kind = activity.KindFetchComplete
	if err != nil {
		e.Kind = activity.KindFetchError
		e.Err = err.Error()
	}
	return e, true
}
