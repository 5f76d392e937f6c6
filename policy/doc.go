// Package policy decides confirmation prompts raised during a submission.
// A policy may answer a prompt itself or delegate it to the user.
package policy
