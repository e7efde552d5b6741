package diversity

import "errors"

// ErrKTooSmall is returned when FindKMDNSP is asked for a non-positive K.
var ErrKTooSmall = errors.New("diversity: k must be positive")

// searchSpaceCap bounds the exhaustive-combination search: beyond this many
// candidates, C(n,K) enumeration becomes intractable, so the search space is
// narrowed to the fittest candidates first.
const searchSpaceCap = 20
