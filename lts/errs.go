package lts

import "errors"

// Sentinel errors for the graph primitives, following the corpus's
// per-package Err* convention.
var (
	ErrNodeNotFound = errors.New("lts: node not found")
	ErrInvalidRoot  = errors.New("lts: root must reference a present node")
)
