package idgen

import "github.com/google/uuid"

// NewFunc generates a submission id; tests may replace it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new submission id.
func New() string { return NewFunc() }
