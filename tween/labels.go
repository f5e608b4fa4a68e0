package tween

import (
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// Label names a position on a player.
type Label struct {
	Name     string
	Position float64
}

// A Mark addresses a position either directly or through a label.
type Mark struct {
	pos   float64
	label string
	named bool
}

// At marks an absolute position.
func At(pos float64) Mark { return Mark{pos: pos} }

// Named marks the position of a label.
func Named(label string) Mark { return Mark{label: label, named: true} }

func (m Mark) String() string {
	if m.named {
		return m.label
	}
	return strconv.FormatFloat(m.pos, 'g', -1, 64)
}

type labelTable map[string]float64

func (l labelTable) sorted() []Label {
	out := lo.MapToSlice(l, func(name string, pos float64) Label {
		return Label{Name: name, Position: pos}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AddLabel defines or moves a label.
func (b *base) AddLabel(name string, pos float64) {
	if b.labels == nil {
		b.labels = make(labelTable)
	}
	b.labels[name] = pos
}

// SetLabels replaces all labels.
func (b *base) SetLabels(labels map[string]float64) {
	b.labels = make(labelTable, len(labels))
	for name, pos := range labels {
		b.labels[name] = pos
	}
}

// Labels lists all labels sorted by ascending position.
func (b *base) Labels() []Label {
	return b.labels.sorted()
}

// CurrentLabel returns the latest label at or before the current position.
func (b *base) CurrentLabel() (string, bool) {
	name, found := "", false
	for _, l := range b.labels.sorted() {
		if b.position < l.Position {
			break
		}
		name, found = l.Name, true
	}
	return name, found
}

// Resolve turns a mark into a position. Unknown labels do not resolve.
func (b *base) Resolve(m Mark) (float64, bool) {
	if !m.named {
		return m.pos, true
	}
	pos, ok := b.labels[m.label]
	return pos, ok
}
