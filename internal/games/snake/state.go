package snake

// Status is the lifecycle stage of an engine.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGameOver
	StatusBoardFull // Every cell is snake; there is nowhere left to put food
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Terminal reports whether only Start can leave this status.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusBoardFull
}

// EndReason says why a game stopped.
type EndReason string

const (
	EndNone          EndReason = ""
	EndWallCollision EndReason = "wall-collision"
	EndSelfCollision EndReason = "self-collision"
	EndBoardFull     EndReason = "board-full"
)

// State is a read-only copy of the engine state, safe to keep across steps.
type State struct {
	Width  int
	Height int

	Snake   []Point // Head at index 0
	Food    Point
	HasFood bool

	Direction Direction // Applied on the last step
	Pending   Direction // Will be applied on the next step

	Score  int
	Tick   uint64
	Status Status
	Reason EndReason
}

// Running reports whether the game accepts steps and direction changes.
func (s State) Running() bool {
	return s.Status == StatusRunning
}

// Ended reports whether the game reached a terminal status.
func (s State) Ended() bool {
	return s.Status.Terminal()
}

// Head returns the first segment, if there is a snake.
func (s State) Head() (Point, bool) {
	if len(s.Snake) == 0 {
		return Point{}, false
	}
	return s.Snake[0], true
}

// Len returns the number of segments.
func (s State) Len() int {
	return len(s.Snake)
}

// StepResult is returned by Engine.Step.
type StepResult struct {
	State  State
	Ended  bool      // True once the game is over, including every later call until Start
	Ate    bool      // Food was eaten on this step
	Reason EndReason // Set when Ended
}
