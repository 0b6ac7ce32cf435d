// Package lts implements the graph primitives of a labelled transition
// system: labels, nodes, edges, and the LTS container itself, plus the
// per-compile identifier allocator that replaces a shared global counter.
package lts

// Kind distinguishes the three label variants. Tau and Delta are
// distinguished markers; Visible carries a user string.
type Kind int

const (
	Visible Kind = iota
	Tau
	Delta
)

// TauRune and DeltaRune are the code points used when a label must be
// rendered as a string (serialisation, display labels, error text).
const (
	TauRune   = 'τ'
	DeltaRune = 'δ'
)

// Label is either the hidden action τ, the deadlock marker δ, or a
// user-visible action name. Broadcast and Listen record the `!`/`?`
// prefix stripped during parsing; they are carried as flags alongside
// the bare name rather than folded back into it.
type Label struct {
	Kind      Kind
	Name      string
	Broadcast bool
	Listen    bool
}

// TauLabel returns the distinguished hidden-action label.
func TauLabel() Label { return Label{Kind: Tau} }

// DeltaLabel returns the distinguished deadlock label.
func DeltaLabel() Label { return Label{Kind: Delta} }

// VisibleLabel returns a user-visible label with the given bare name
// and broadcast/listen flags.
func VisibleLabel(name string, broadcast, listen bool) Label {
	return Label{Kind: Visible, Name: name, Broadcast: broadcast, Listen: listen}
}

// String renders the label the way it must appear when serialised: τ,
// δ, or the bare visible name (the `!`/`?` prefix is not re-added here;
// callers that need the prefix back use Broadcast/Listen directly).
func (l Label) String() string {
	switch l.Kind {
	case Tau:
		return string(TauRune)
	case Delta:
		return string(DeltaRune)
	default:
		return l.Name
	}
}

// SyncKey identifies a label for alphabet/synchronisation purposes,
// ignoring the broadcast/listen flags (orthogonal to synchronisation
// per the parallel-composition design).
func (l Label) SyncKey() string {
	switch l.Kind {
	case Tau:
		return string(TauRune)
	case Delta:
		return string(DeltaRune)
	default:
		return "a:" + l.Name
	}
}

// Equal reports whether two labels are identical, including the
// broadcast/listen flags.
func (l Label) Equal(o Label) bool {
	return l.Kind == o.Kind && l.Name == o.Name && l.Broadcast == o.Broadcast && l.Listen == o.Listen
}
