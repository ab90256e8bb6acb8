// Package jsonexport serializes a finished stategraph.Snapshot into the
// module's single persisted artifact: a pretty-printed UTF-8 JSON object
// of nodes (id, boxes-on-targets count) and directed edges.
package jsonexport
