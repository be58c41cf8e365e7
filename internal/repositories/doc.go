// Package repositories implements SQLite persistence for the track library.
//
// [TrackRepository] stores library tracks with soft deletes via deleted_at timestamps;
// deleted records are excluded from queries. Live tracks keep contiguous positions
// starting at 0, which is the order the carousel presents them in.
//
// Sequence numbers record insertion order independent of UUIDs and positions. They back
// the "newest" listing and break ties in position order. [NextSequence] increments the
// per-table counter inside the inserting transaction.
package repositories
