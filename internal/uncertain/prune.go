package uncertain

// pruneThreshold is the magnitude below which a partial derivative is treated
// as zero and dropped from the map. It sits near the smallest positive
// normal double, so this is a cancellation filter, not a statistical one:
// long chains of near-cancelling operations stop accumulating dead entries,
// and entries that merged to exactly zero (x - x) disappear entirely.
const pruneThreshold = 1e-300

// prune removes negligible entries in place and returns the map.
func prune(deriv map[VarID]float64) map[VarID]float64 {
	for id, d := range deriv {
		if d < pruneThreshold && d > -pruneThreshold {
			delete(deriv, id)
		}
	}
	return deriv
}
