package clock

import "time"

// DateLayout formats the UTC date portion used in export file names.
const DateLayout = "2006-01-02"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }
