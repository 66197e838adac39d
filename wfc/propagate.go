package wfc

// propagateFrom prunes neighbours of coord to respect the rules, cascading
// to a fixed point, and returns every coordinate whose possibility set was
// touched (shrunk or promoted to Decided). coord's own cell must already
// be in its new state (Decided or a freshly reduced possibility set)
// before this is called; propagateFrom only ever looks outward from it.
//
// This implements both propagate_decided and propagate_possibility_set
// from the design: a single work queue, rather than recursion, so a deep
// cascade never grows the call stack (spec's "replace recursive calls
// with an explicit work queue").
func (b *Board[T, D]) propagateFrom(coord Coord) []Coord {
	touchedOrder := make([]Coord, 0, 8)
	touchedSeen := make(map[Coord]struct{}, 8)
	queue := []Coord{coord}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cell := b.cellAt(cur)

		for _, d := range b.rules.Directions() {
			nr, nc, nl, ok := b.rules.Neighbour(d, cur.Row, cur.Col, cur.Layer, b.width, b.length, b.height)
			if !ok {
				continue
			}
			ncoord := Coord{Row: nr, Col: nc, Layer: nl}
			neighbour := b.cellAt(ncoord)
			if neighbour.decided {
				continue
			}

			var newSet []T
			if cell.decided {
				t := cell.tile
				newSet = filterPossible(neighbour.possible, func(x T) bool {
					return b.rules.Permits(t, x, d)
				})
			} else {
				newSet = filterPossible(neighbour.possible, func(x T) bool {
					for _, s := range cell.possible {
						if b.rules.Permits(s, x, d) {
							return true
						}
					}
					return false
				})
			}

			if len(newSet) == len(neighbour.possible) {
				continue
			}

			b.setReduced(ncoord, newSet)
			if _, seen := touchedSeen[ncoord]; !seen {
				touchedSeen[ncoord] = struct{}{}
				touchedOrder = append(touchedOrder, ncoord)
			}

			switch {
			case len(newSet) == 1:
				b.setDecided(ncoord, newSet[0])
				queue = append(queue, ncoord)
			case len(newSet) > 1:
				queue = append(queue, ncoord)
			}
		}
	}

	return touchedOrder
}
