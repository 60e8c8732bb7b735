package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every candidate evaluation the selector performs.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// PlanningTrace collects decision records across planning cycles.
type PlanningTrace struct {
	Level     TraceLevel
	Decisions []DecisionRecord
}

// NewPlanningTrace creates a PlanningTrace ready for recording.
func NewPlanningTrace(level TraceLevel) *PlanningTrace {
	return &PlanningTrace{
		Level:     level,
		Decisions: make([]DecisionRecord, 0),
	}
}

// Enabled reports whether records should be collected at all.
func (pt *PlanningTrace) Enabled() bool {
	return pt != nil && pt.Level == TraceLevelDecisions
}

// RecordDecision appends a candidate evaluation record. No-op when tracing is
// disabled.
func (pt *PlanningTrace) RecordDecision(record DecisionRecord) {
	if !pt.Enabled() {
		return
	}
	pt.Decisions = append(pt.Decisions, record)
}
