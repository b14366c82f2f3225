// Package exhibition provides the Exhibition record and the free-text
// date-range parser.
//
// An exhibition's identity is the case-insensitive (title, gallery)
// pair; Dedupe collapses candidate lists on that key with first-seen
// wins. The date parser tries an ordered list of textual patterns and
// never invents a date: unparseable ranges leave the exhibition
// without dates so the caller can skip it or require manual entry.
package exhibition
