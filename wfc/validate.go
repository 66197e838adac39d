package wfc

// BidirectionalityViolation records one pair of tiles and direction for
// which a Ruleset's Permits answered inconsistently in the two
// directions: a should allow b in direction d exactly when b allows a in
// the opposite direction, or a rule authoring mistake will make the
// propagator narrow one neighbour's possibility set while leaving the
// other's untouched, producing boards that look locally valid but aren't
// globally consistent.
type BidirectionalityViolation[T comparable, D comparable] struct {
	A, B      T
	Direction D
	AtoB      bool // Permits(A, B, Direction)
	BtoA      bool // Permits(B, A, Opposite(Direction))
}

// Validate checks every ordered pair of tiles in the alphabet (the union
// of Possibles across every layer of a height-layer board) against every
// direction, reporting each pair/direction for which Permits disagrees
// with its mirror. It never mutates a board and never returns an error:
// an asymmetric rule is a caller authoring mistake worth surfacing, not a
// condition the solver itself needs to refuse to run under (many
// legitimate rulesets are deliberately one-directional for a subset of
// tiles, e.g. a one-way door).
func Validate[T comparable, D comparable](rules Ruleset[T, D], height int) []BidirectionalityViolation[T, D] {
	alphabet := unionAlphabet(rules, height)
	directions := rules.Directions()

	var violations []BidirectionalityViolation[T, D]

	// Each unordered tile pair (i<=j, including i==j) is checked once per
	// direction: Permits(a,b,d) against its mirror Permits(b,a,opp(d)).
	// Checking the pair the other way round, or at opp(d), would just
	// restate the same fact with A/B and AtoB/BtoA swapped.
	for i, a := range alphabet {
		for j := i; j < len(alphabet); j++ {
			b := alphabet[j]
			for _, d := range directions {
				opp := rules.Opposite(d)
				atob := rules.Permits(a, b, d)
				btoa := rules.Permits(b, a, opp)
				if atob != btoa {
					violations = append(violations, BidirectionalityViolation[T, D]{
						A: a, B: b, Direction: d, AtoB: atob, BtoA: btoa,
					})
				}
			}
		}
	}
	return violations
}

func unionAlphabet[T comparable, D comparable](rules Ruleset[T, D], height int) []T {
	seen := make(map[T]struct{})
	var out []T
	for l := 0; l < height; l++ {
		for _, t := range rules.Possibles(l) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
