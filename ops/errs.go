// Package ops implements the LTS transformation library: hiding, weak
// abstraction, strong-bisimulation minimisation, parallel composition,
// and the supporting maintenance primitives they are built from. Every
// exported entry point deep-clones its input first; none mutates its
// argument.
package ops

import "errors"

var (
	ErrNoIDsToMerge  = errors.New("ops: merge-nodes requires at least one id")
	ErrUnknownNodeID = errors.New("ops: node id not present in LTS")
)
