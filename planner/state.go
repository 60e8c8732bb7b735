package planner

// ManeuverState identifies one of the discrete maneuvers the planner can
// commit the ego vehicle to. The set is closed: realizeState dispatches
// exhaustively and panics on anything outside it.
type ManeuverState string

const (
	// StateConstantSpeed holds the current velocity (zero acceleration).
	// This is the initial tag of a freshly constructed Vehicle; the selector
	// never proposes it during normal operation.
	StateConstantSpeed ManeuverState = "CS"
	// StateKeepLane drives at target speed in the current lane, braking for
	// a lead vehicle when necessary.
	StateKeepLane ManeuverState = "KL"
	// StateLaneChangeLeft shifts one lane left immediately, then follows
	// keep-lane longitudinal behavior in the new lane.
	StateLaneChangeLeft ManeuverState = "LCL"
	// StateLaneChangeRight shifts one lane right immediately.
	StateLaneChangeRight ManeuverState = "LCR"
	// StatePrepLaneChangeLeft matches speed to the gap behind the nearest
	// vehicle in the left adjacent lane without leaving the current lane.
	StatePrepLaneChangeLeft ManeuverState = "PLCL"
	// StatePrepLaneChangeRight is the right-lane counterpart of PLCL.
	StatePrepLaneChangeRight ManeuverState = "PLCR"
)

// validManeuverStates maps the recognized maneuver tags.
var validManeuverStates = map[ManeuverState]bool{
	StateConstantSpeed:       true,
	StateKeepLane:            true,
	StateLaneChangeLeft:      true,
	StateLaneChangeRight:     true,
	StatePrepLaneChangeLeft:  true,
	StatePrepLaneChangeRight: true,
}

// IsValidManeuverState returns true if the given tag is a recognized maneuver state.
func IsValidManeuverState(state ManeuverState) bool {
	return validManeuverStates[state]
}
