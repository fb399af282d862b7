package domain

// Result is the snapshot read out of a machine after a run.
type Result struct {
	State    State    `json:"state"`
	Steps    int      `json:"steps"`
	Accepted bool     `json:"accepted"`
	Tape     []Symbol `json:"tape"`
	Pointer  int      `json:"pointer"`
}

// IsAccepting reports whether s is the accepting state.
func IsAccepting(s State) bool {
	return s == AcceptState
}
