package lts

// Edge is a directed, labelled triple from one node to another. The
// model permits multiple parallel edges between the same pair of nodes
// as long as their labels differ, or as long as they have not yet been
// collapsed by remove-duplicate-edges.
type Edge struct {
	ID    int
	From  int
	To    int
	Label Label
}

// Hidden reports whether the edge carries the hidden action τ.
func (e Edge) Hidden() bool { return e.Label.Kind == Tau }

// Deadlock reports whether the edge carries the deadlock marker δ.
func (e Edge) Deadlock() bool { return e.Label.Kind == Delta }
