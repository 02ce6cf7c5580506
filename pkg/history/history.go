// Package history keeps the bounded command log a session feeds into
// prompts and diagnosis context.
package history

// Capacity is how many commands a session remembers.
const Capacity = 20

// Ring is a bounded, append-only command log. Oldest entries are
// evicted first. Consecutive duplicates are collapsed so retries of the
// same command don't crowd out older context.
type Ring struct {
	capacity int
	entries  []string
}

func New() *Ring {
	return NewWithCapacity(Capacity)
}

func NewWithCapacity(n int) *Ring {
	if n < 1 {
		n = 1
	}
	return &Ring{capacity: n}
}

// Add records a command unless it repeats the latest entry.
func (r *Ring) Add(command string) {
	if n := len(r.entries); n > 0 && r.entries[n-1] == command {
		return
	}
	r.entries = append(r.entries, command)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
}

// Commands returns the history oldest first. The slice is a copy.
func (r *Ring) Commands() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns up to the n most recent commands, oldest first.
func (r *Ring) Last(n int) []string {
	if n >= len(r.entries) {
		return r.Commands()
	}
	return append([]string(nil), r.entries[len(r.entries)-n:]...)
}

func (r *Ring) Len() int { return len(r.entries) }
