// Package history keeps the log of submitted lines and the recall cursor
// behind up/down navigation.
package history

// History is an append-only log of submitted lines with a recall cursor.
// The cursor ranges over [0, len(entries)], where len(entries) is the
// "fresh" position: nothing is currently recalled.
type History struct {
	entries  []string
	cursor   int
	circular bool
	limit    int
}

// New creates a History. In circular mode Prev and Next wrap around the
// ends of the log through the fresh position; otherwise they clamp.
// limit bounds the number of retained entries (0 = unlimited).
func New(circular bool, limit int) *History {
	return &History{circular: circular, limit: limit}
}

// Push appends line and resets the cursor to the fresh position. Empty
// lines and repeats of the most recent entry are dropped without
// touching the cursor.
func (h *History) Push(line string) {
	if line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	h.trim()
	h.cursor = len(h.entries)
}

// Prev moves the cursor toward older entries and returns the entry
// there, or "" when the cursor lands on the fresh position.
func (h *History) Prev() string {
	if h.circular && h.cursor == 0 {
		h.cursor = len(h.entries)
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.get()
}

// Next moves the cursor toward newer entries and returns the entry
// there, or "" when the cursor lands on the fresh position.
func (h *History) Next() string {
	if h.circular && h.cursor == len(h.entries) {
		h.cursor = 0
	} else if h.cursor < len(h.entries) {
		h.cursor++
	}
	return h.get()
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stored log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// SetEntries replaces the log, applying the same suppression rules as
// Push, and leaves the cursor at the fresh position. Used to seed the
// log from a persisted session.
func (h *History) SetEntries(lines []string) {
	h.entries = h.entries[:0]
	for _, line := range lines {
		if line == "" {
			continue
		}
		if n := len(h.entries); n > 0 && h.entries[n-1] == line {
			continue
		}
		h.entries = append(h.entries, line)
	}
	h.trim()
	h.cursor = len(h.entries)
}

func (h *History) get() string {
	if h.cursor >= 0 && h.cursor < len(h.entries) {
		return h.entries[h.cursor]
	}
	return ""
}

// trim drops the oldest entries beyond the limit.
func (h *History) trim() {
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}
