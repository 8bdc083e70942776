// Package snake implements the snake simulation: a deterministic step
// function over a fixed grid. It has no knowledge of terminals, timers or
// keyboards; the platform layer drives it and draws its State.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gammazero/deque"
)

const (
	MinGridWidth         = 4 // Head at width/2 needs two body cells to its left
	MinGridHeight        = 1
	InitialLength        = 3
	DefaultPointsPerFood = 10
)

var (
	// ErrInvalidGrid is returned when the grid cannot fit the starting snake and a food cell.
	ErrInvalidGrid = errors.New("snake: invalid grid size")
	// ErrInvalidOptions is returned for negative scoring or attempt limits.
	ErrInvalidOptions = errors.New("snake: invalid options")
)

// Options configures a new Engine.
type Options struct {
	Width  int
	Height int

	// PointsPerFood is added to the score for every food eaten.
	PointsPerFood int

	// MaxFoodAttempts caps random draws before placement falls back to
	// enumerating free cells. 0 means four times the grid area.
	MaxFoodAttempts int

	Seed int64
}

// DefaultOptions returns the classic 30x30 board.
func DefaultOptions() Options {
	return Options{
		Width:         30,
		Height:        30,
		PointsPerFood: DefaultPointsPerFood,
	}
}

// Validate checks the options without building an engine.
func (o Options) Validate() error {
	if o.Width < MinGridWidth || o.Height < MinGridHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrInvalidGrid, o.Width, o.Height, MinGridWidth, MinGridHeight)
	}
	if o.PointsPerFood < 0 {
		return fmt.Errorf("%w: points per food %d", ErrInvalidOptions, o.PointsPerFood)
	}
	if o.MaxFoodAttempts < 0 {
		return fmt.Errorf("%w: max food attempts %d", ErrInvalidOptions, o.MaxFoodAttempts)
	}
	return nil
}

// Engine owns one game. It is not safe for concurrent use; callers must
// serialize SetDirection and Step.
type Engine struct {
	width           int
	height          int
	pointsPerFood   int
	maxFoodAttempts int
	rng             *rand.Rand

	body     deque.Deque[Point] // Head at the front
	occupied []bool             // Indexed by y*width+x
	food     Point
	hasFood  bool

	direction Direction
	pending   Direction
	score     int
	tick      uint64
	status    Status
	reason    EndReason
}

// NewEngine creates an engine in the NotStarted status.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	maxAttempts := opts.MaxFoodAttempts
	if maxAttempts == 0 {
		maxAttempts = 4 * opts.Width * opts.Height
	}

	return &Engine{
		width:           opts.Width,
		height:          opts.Height,
		pointsPerFood:   opts.PointsPerFood,
		maxFoodAttempts: maxAttempts,
		rng:             rand.New(rand.NewSource(opts.Seed)),
		occupied:        make([]bool, opts.Width*opts.Height),
		direction:       DirRight,
		pending:         DirRight,
	}, nil
}

// Start begins a fresh game, discarding any previous one.
func (e *Engine) Start() {
	e.body.Clear()
	clear(e.occupied)

	cx, cy := e.width/2, e.height/2
	for i := range InitialLength {
		p := Point{X: cx - i, Y: cy}
		e.body.PushBack(p)
		e.occupied[e.index(p)] = true
	}

	e.direction = DirRight
	e.pending = DirRight
	e.score = 0
	e.tick = 0
	e.reason = EndNone
	e.status = StatusRunning

	if !e.placeFood() {
		e.finish(StatusBoardFull, EndBoardFull)
	}
}

// SetDirection queues a heading for the next step. It is ignored unless the
// game is running, and ignored when d reverses the current heading.
func (e *Engine) SetDirection(d Direction) {
	if e.status != StatusRunning || !d.Valid() {
		return
	}
	if IsOpposite(d, e.direction) {
		return
	}
	e.pending = d
}

// Step advances the game by one cell.
func (e *Engine) Step() StepResult {
	if e.status != StatusRunning {
		return StepResult{State: e.State(), Ended: e.status.Terminal(), Reason: e.reason}
	}

	next := e.body.Front().Add(e.pending.Delta())

	if !e.inBounds(next) {
		e.finish(StatusGameOver, EndWallCollision)
		return StepResult{State: e.State(), Ended: true, Reason: e.reason}
	}
	// The tail still counts: it has not moved yet.
	if e.occupied[e.index(next)] {
		e.finish(StatusGameOver, EndSelfCollision)
		return StepResult{State: e.State(), Ended: true, Reason: e.reason}
	}

	e.direction = e.pending
	e.body.PushFront(next)
	e.occupied[e.index(next)] = true
	e.tick++

	ate := e.hasFood && next == e.food
	if !ate {
		tail := e.body.PopBack()
		e.occupied[e.index(tail)] = false
		return StepResult{State: e.State()}
	}

	e.score += e.pointsPerFood
	if !e.placeFood() {
		e.finish(StatusBoardFull, EndBoardFull)
		return StepResult{State: e.State(), Ended: true, Ate: true, Reason: e.reason}
	}
	return StepResult{State: e.State(), Ate: true}
}

// State returns a copy of the current game state.
func (e *Engine) State() State {
	segments := make([]Point, e.body.Len())
	for i := range segments {
		segments[i] = e.body.At(i)
	}

	return State{
		Width:     e.width,
		Height:    e.height,
		Snake:     segments,
		Food:      e.food,
		HasFood:   e.hasFood,
		Direction: e.direction,
		Pending:   e.pending,
		Score:     e.score,
		Tick:      e.tick,
		Status:    e.status,
		Reason:    e.reason,
	}
}

// Status returns the lifecycle stage without copying the snake.
func (e *Engine) Status() Status {
	return e.status
}

// Size returns the grid dimensions.
func (e *Engine) Size() (width, height int) {
	return e.width, e.height
}

func (e *Engine) finish(status Status, reason EndReason) {
	e.status = status
	e.reason = reason
}

func (e *Engine) inBounds(p Point) bool {
	return p.X >= 0 && p.X < e.width && p.Y >= 0 && p.Y < e.height
}

func (e *Engine) index(p Point) int {
	return p.Y*e.width + p.X
}
