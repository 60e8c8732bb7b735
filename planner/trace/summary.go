package trace

// TraceSummary aggregates statistics from a PlanningTrace.
type TraceSummary struct {
	TotalDecisions     int
	Cycles             int
	EvaluationsByState map[string]int // state → number of candidate evaluations
	WinsByState        map[string]int // state → number of cycles it won
	MeanWinningCost    float64
	MaxWinningCost     float64
}

// Summarize computes aggregate statistics from a PlanningTrace. Within a
// cycle the winner is the record with the strictly lowest cost; ties keep the
// earlier record, matching the selector's stable arg-min. Safe for nil or
// empty traces (returns zero-value fields).
func Summarize(pt *PlanningTrace) *TraceSummary {
	summary := &TraceSummary{
		EvaluationsByState: make(map[string]int),
		WinsByState:        make(map[string]int),
	}
	if pt == nil || len(pt.Decisions) == 0 {
		return summary
	}

	summary.TotalDecisions = len(pt.Decisions)

	// group records per cycle, preserving record order within each cycle
	byCycle := make(map[int][]DecisionRecord)
	cycles := make([]int, 0)
	for _, rec := range pt.Decisions {
		summary.EvaluationsByState[rec.State]++
		if _, seen := byCycle[rec.Cycle]; !seen {
			cycles = append(cycles, rec.Cycle)
		}
		byCycle[rec.Cycle] = append(byCycle[rec.Cycle], rec)
	}
	summary.Cycles = len(cycles)

	totalWinning := 0.0
	for _, cycle := range cycles {
		records := byCycle[cycle]
		winner := records[0]
		for _, rec := range records[1:] {
			if rec.Cost < winner.Cost {
				winner = rec
			}
		}
		summary.WinsByState[winner.State]++
		totalWinning += winner.Cost
		if winner.Cost > summary.MaxWinningCost {
			summary.MaxWinningCost = winner.Cost
		}
	}
	summary.MeanWinningCost = totalWinning / float64(len(cycles))

	return summary
}
