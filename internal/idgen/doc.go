// Package idgen produces submission identifiers. Identifiers only correlate
// log lines and spans of one invocation, callers must treat them as opaque.
package idgen
