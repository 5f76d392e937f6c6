// Package progress tracks the phase and counters of a single submission
// invocation. The tracker travels in the context so that every component
// handling the submission can report to it.
package progress
