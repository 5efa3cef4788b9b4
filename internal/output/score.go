// internal/output/score.go
package output

import "math"

// Score converts a full-precision window percentage into the integer
// score column. The ceiling mirrors the threshold's round-up rule; it is
// applied here and nowhere upstream, so the domain Match keeps full
// precision.
func Score(percent float64) int { return int(math.Ceil(percent)) }
