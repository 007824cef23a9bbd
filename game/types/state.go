package types

// Phase is the coarse game state.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game over"
	}
	return "playing"
}

// EndCause explains why a round reached GameOver.
type EndCause int

const (
	NoCause EndCause = iota
	CollisionCause
	WinCause
)

func (c EndCause) String() string {
	switch c {
	case CollisionCause:
		return "collision"
	case WinCause:
		return "win"
	}
	return "none"
}

// CollisionKind represents the type of collision
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	WallCollision
	SelfCollision
)

func (k CollisionKind) String() string {
	switch k {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

// Input is a discrete player event, already mapped from raw key codes.
type Input int

const (
	InputUp Input = iota
	InputDown
	InputLeft
	InputRight
	InputRestart
)

// Direction returns the heading requested by a directional input.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return Up, true
	case InputDown:
		return Down, true
	case InputLeft:
		return Left, true
	case InputRight:
		return Right, true
	}
	return Up, false
}

func (in Input) String() string {
	if in == InputRestart {
		return "restart"
	}
	d, _ := in.Direction()
	return d.String()
}

// Snapshot is an immutable copy of the state handed to the Render Port.
type Snapshot struct {
	Grid      Grid
	Body      []Position // head first
	Food      Position
	Phase     Phase
	Cause     EndCause
	Direction Direction
	Tick      uint64
	Score     int // food eaten this round
	Best      int // best length this session
	Round     string
}

// Head returns the first body position.
func (s Snapshot) Head() Position {
	if len(s.Body) == 0 {
		return Position{}
	}
	return s.Body[0]
}

func (s Snapshot) Length() int {
	return len(s.Body)
}
