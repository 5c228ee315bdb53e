// Package xmlcursor provides a forward-only, namespace-aware cursor over XML
// structural events. A cursor is positioned on one event at a time; readers
// inspect the current event and advance explicitly.
//
// Two cursors are provided: Reader streams from an io.Reader, and Events walks
// a pre-tokenized event slice, which makes subtree-consumption contracts easy
// to assert in tests.
package xmlcursor
