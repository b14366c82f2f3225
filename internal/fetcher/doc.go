// Package fetcher gathers candidate exhibitions from web sources: a
// listing-site search for configured locations and neighborhoods, and
// the current-exhibitions pages of known galleries.
//
// The sources provide no structured date or description guarantee, so
// the fetcher fills in whatever fields it can extract and tolerates
// the rest being missing. Transport failures are logged and degrade to
// an empty result for that one source; a run never aborts because a
// single gallery page was unreachable.
package fetcher
