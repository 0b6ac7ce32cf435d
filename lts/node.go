package lts

// TerminalKind distinguishes the two recognised terminal roles a node
// can carry.
type TerminalKind string

const (
	TerminalStop  TerminalKind = "stop"
	TerminalError TerminalKind = "error"
)

// Metadata is the fixed-key metadata bag of a node, modeled as a typed
// struct rather than an open map: the only keys a node can ever carry
// are the ones listed here.
type Metadata struct {
	StartNode bool
	Terminal  *TerminalKind
	Parallel  bool
}

// IsStop reports whether the metadata tags the node as a stop terminal.
func (m Metadata) IsStop() bool {
	return m.Terminal != nil && *m.Terminal == TerminalStop
}

// IsError reports whether the metadata tags the node as an error sink.
func (m Metadata) IsError() bool {
	return m.Terminal != nil && *m.Terminal == TerminalError
}

// Clone returns a value copy of m with its own Terminal pointer.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Terminal != nil {
		t := *m.Terminal
		out.Terminal = &t
	}
	return out
}

// Merge folds other onto m, overwriting non-zero fields of other onto
// m. This implements the documented tie-break for merge-nodes: later
// values overwrite earlier ones on key conflict.
func (m Metadata) Merge(other Metadata) Metadata {
	out := m
	if other.StartNode {
		out.StartNode = true
	}
	if other.Terminal != nil {
		t := *other.Terminal
		out.Terminal = &t
	}
	if other.Parallel {
		out.Parallel = true
	}
	return out
}

// Node is a single state of an LTS: a stable id, an optional display
// label, and its metadata bag.
type Node struct {
	ID    int
	Label string
	Meta  Metadata
}

func stopKind() *TerminalKind {
	k := TerminalStop
	return &k
}

func errorKind() *TerminalKind {
	k := TerminalError
	return &k
}
