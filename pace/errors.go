package pace

import "errors"

// ErrParse is wrapped by every parse failure: a malformed header, an edge
// count mismatch against the header, or a vertex id out of range. Always
// check with errors.Is(err, pace.ErrParse).
var ErrParse = errors.New("pace: malformed input")
