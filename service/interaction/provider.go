// Package interaction abstracts the user dialogs and link opening needed by
// a submission, so hosts can plug a terminal, a UI or a script.
package interaction

import "context"

// Provider presents messages and yes/no questions to the user.
type Provider interface {
	// Notify shows an informational message and waits for acknowledgment.
	Notify(ctx context.Context, message string)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, message string) bool
}

// Opener opens a link in a new browsing context.
type Opener interface {
	Open(ctx context.Context, URL string) error
}
