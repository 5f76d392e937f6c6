// Package model contains the data exchanged by the corrections submitter:
// the payload built by the reviewer UI, the JSON document returned by the
// remote endpoint and the normalised outcome of a single submission.
package model
