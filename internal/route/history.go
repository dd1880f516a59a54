package route

// History is a navigation stack. The first entry is never popped.
type History struct {
	entries []Route
}

// NewHistory starts a history at the given route.
func NewHistory(start Route) *History {
	return &History{entries: []Route{start}}
}

// Push records a navigation to r.
func (h *History) Push(r Route) {
	h.entries = append(h.entries, r)
}

// Back drops the current entry and reports whether there was a previous
// one to return to. At the first entry it does nothing and returns false.
func (h *History) Back() bool {
	if len(h.entries) <= 1 {
		return false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return true
}

// Current returns the route being shown.
func (h *History) Current() Route {
	return h.entries[len(h.entries)-1]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
