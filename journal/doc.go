// Package journal keeps a bounded, memory-resident trail of circulation
// activity. Every successful state change at the desk is serialized into an
// Entry - a scalar DTO carrying the event type, occurrence time, the JSON
// payload of the domain event, and JSON metadata with message, causation and
// correlation identifiers.
//
// The journal is a ring buffer: once capacity is reached the oldest entries
// are discarded. It is browsable from the console menu and exists purely for
// the running session - nothing is persisted across process restarts.
package journal
