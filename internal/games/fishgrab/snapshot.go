package fishgrab

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Score     int
	Collected int
	Moves     int
	ItemsLeft int
	AgentX    int
	AgentY    int
	Status    Status
	Board     string // Maze rows in the maze.Parse alphabet
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Score:     g.state.Score,
		Collected: g.state.Collected,
		Moves:     g.state.Moves,
		ItemsLeft: g.ItemsLeft(),
		AgentX:    g.state.Agent.X,
		AgentY:    g.state.Agent.Y,
		Status:    g.state.Status,
	}
	if g.maze != nil {
		snap.Board = g.maze.String()
	}
	return snap
}
