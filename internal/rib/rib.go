/* ============================================================= *\
   rib.go

   Per-AS routing state: the LocalRIB (best path per prefix) and the
   RecvQueue (announcements staged this round, grouped by prefix).
   Both are owned exclusively by a single Policy; nothing here is
   safe for concurrent access, matching the single-threaded-per-run
   model the engine relies on.
\* ============================================================= */

package rib

import (
	"sort"

	"github.com/Emeline-1/asgraphsim/internal/ann"
)

// Entry pairs a prefix with the announcement installed for it.
type Entry struct {
	Prefix string
	Ann    *ann.Announcement
}

// LocalRIB holds exactly one best path per prefix.
type LocalRIB struct {
	info map[string]*ann.Announcement
}

// NewLocalRIB returns an empty LocalRIB.
func NewLocalRIB() *LocalRIB {
	return &LocalRIB{info: make(map[string]*ann.Announcement)}
}

// Get returns the announcement installed for prefix, or nil.
func (r *LocalRIB) Get(prefix string) *ann.Announcement {
	return r.info[prefix]
}

// Add installs ann as the best path for its prefix, replacing whatever
// was there before.
func (r *LocalRIB) Add(a *ann.Announcement) {
	r.info[a.Prefix] = a
}

// Remove deletes any entry for prefix.
func (r *LocalRIB) Remove(prefix string) {
	delete(r.info, prefix)
}

// Len reports the number of installed prefixes.
func (r *LocalRIB) Len() int {
	return len(r.info)
}

// Entries returns all (prefix, announcement) pairs in ascending
// lexicographic prefix order, so that propagation over a LocalRIB is
// reproducible across runs.
func (r *LocalRIB) Entries() []Entry {
	entries := make([]Entry, 0, len(r.info))
	for prefix, a := range r.info {
		entries = append(entries, Entry{Prefix: prefix, Ann: a})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Prefix < entries[j].Prefix })
	return entries
}

// QueueEntry pairs a prefix with the announcements received for it this
// stage, in the order they were appended.
type QueueEntry struct {
	Prefix string
	Anns   []*ann.Announcement
}

// RecvQueue stages announcements received from neighbors during the
// current propagation stage until the owner drains it.
type RecvQueue struct {
	info map[string][]*ann.Announcement
}

// NewRecvQueue returns an empty RecvQueue.
func NewRecvQueue() *RecvQueue {
	return &RecvQueue{info: make(map[string][]*ann.Announcement)}
}

// Add appends a to the list staged for its prefix.
func (q *RecvQueue) Add(a *ann.Announcement) {
	q.info[a.Prefix] = append(q.info[a.Prefix], a)
}

// Entries returns every staged (prefix, announcement list) pair in
// ascending lexicographic prefix order; within a prefix, announcements
// keep insertion order.
func (q *RecvQueue) Entries() []QueueEntry {
	entries := make([]QueueEntry, 0, len(q.info))
	for prefix, anns := range q.info {
		entries = append(entries, QueueEntry{Prefix: prefix, Anns: anns})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Prefix < entries[j].Prefix })
	return entries
}

// Clear resets the queue to empty.
func (q *RecvQueue) Clear() {
	q.info = make(map[string][]*ann.Announcement)
}
