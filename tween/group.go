package tween

import "github.com/samber/lo"

// Group propagates pause and time scale to a set of independently registered
// players. Unlike a Timeline it does not drive their positions.
type Group struct {
	players   []Player
	paused    bool
	timeScale float64
}

// NewGroup creates a group holding players.
func NewGroup(players ...Player) *Group {
	g := &Group{timeScale: 1}
	g.Add(players...)
	return g
}

// Add joins players to the group, applying its time scale and, if the group is
// paused, pausing them.
func (g *Group) Add(players ...Player) {
	for _, p := range players {
		p.SetTimeScale(g.timeScale)
		if g.paused {
			p.SetPaused(true)
		}
		g.players = append(g.players, p)
	}
}

// Remove drops players from the group without touching their state.
func (g *Group) Remove(players ...Player) {
	g.players = lo.Without(g.players, players...)
}

// Players returns the members in insertion order.
func (g *Group) Players() []Player {
	return append([]Player(nil), g.players...)
}

func (g *Group) Paused() bool { return g.paused }

// SetPaused pauses or resumes every member.
func (g *Group) SetPaused(paused bool) {
	g.paused = paused
	for _, p := range g.Players() {
		p.SetPaused(paused)
	}
}

func (g *Group) TimeScale() float64 { return g.timeScale }

// SetTimeScale applies s to every member.
func (g *Group) SetTimeScale(s float64) {
	g.timeScale = s
	for _, p := range g.players {
		p.SetTimeScale(s)
	}
}

// Reset pauses and drops every member.
func (g *Group) Reset() {
	for _, p := range g.players {
		p.SetPaused(true)
	}
	g.players = nil
}
