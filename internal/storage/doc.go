// Package storage persists the deduplicated exhibition set as a JSON
// array in a flat cache file under the data directory. The file is
// read and written wholesale; there is no partial update and no
// coordination between concurrent invocations (last writer wins).
package storage
