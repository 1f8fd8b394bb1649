package diff

// Stats are the per-kind counters of an edit script, equals are not counted.
type Stats struct {
	Add    int `json:"add"`
	Delete int `json:"delete"`
	Change int `json:"change"`
}

// CollectStats tallies a finished edit script. Total over any script,
// the empty script yields all zeros.
func CollectStats(script []EditOp) Stats {
	var stats Stats
	for _, op := range script {
		switch op.Kind {
		case OpInsert: stats.Add++
		case OpDelete: stats.Delete++
		case OpChange: stats.Change++
		}
	}
	return stats
}
