package metrics

import "time"

type SearchMetric struct {
	Candidates int // placements checked by the validator
	Duration   time.Duration
}

type MoveMetric struct {
	Turn        int
	Player      int // Player ID
	Piece       string
	Orientation int
	Row         int
	Col         int
	Cells       int
	SearchMetric
}

type GameMetric struct {
	Players    int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	TotalTurns int
}

type Collector interface {
	Start()
	AddCandidate()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	candidates int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.candidates = 0
}

func (m *collector) AddCandidate() {
	m.candidates++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Candidates: m.candidates,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddCandidate()          {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
