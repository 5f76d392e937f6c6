package model

// DefaultFailureMessage is used when a rejected submission carries no error text.
const DefaultFailureMessage = "Failed to submit corrections"

// Outcome is the normalised result of a remote submission. Exactly one of
// Success or Failure is set.
type Outcome struct {
	Success *Success `json:"success,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// Success holds the remote response of an accepted submission.
type Success struct {
	Details *Response `json:"details,omitempty"`
}

// Failure describes why a submission did not go through.
type Failure struct {
	Message string `json:"message"`
}

// NewSuccess returns a success outcome.
func NewSuccess(details *Response) *Outcome {
	if details == nil {
		details = &Response{}
	}
	return &Outcome{Success: &Success{Details: details}}
}

// NewFailure returns a failure outcome, defaulting an empty message.
func NewFailure(message string) *Outcome {
	if message == "" {
		message = DefaultFailureMessage
	}
	return &Outcome{Failure: &Failure{Message: message}}
}

// IsSuccess returns true for a success outcome.
func (o *Outcome) IsSuccess() bool {
	return o != nil && o.Success != nil
}

// Message returns the failure message or an empty string.
func (o *Outcome) Message() string {
	if o == nil || o.Failure == nil {
		return ""
	}
	return o.Failure.Message
}

// Details returns the remote response of a success outcome.
func (o *Outcome) Details() *Response {
	if o == nil || o.Success == nil {
		return nil
	}
	return o.Success.Details
}
