// Package sync decides which cached exhibitions become calendar events
// and which past events get cleaned up.
//
// Matching against existing events is done purely by display title
// within a one-year lookahead window, rebuilt fresh each run. The title
// is not a guaranteed-unique key: a collision with an unrelated event
// of the same text makes the exhibition look already synced. That
// approximation is accepted; the title index is also the only guard
// against duplicate events when two invocations race.
package sync
