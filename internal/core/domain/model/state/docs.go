// Package state defines the work-order lifecycle: the canonical states in
// board display order, the legacy labels that older clients and stored rows
// may still carry, and the field gates each state opens.
//
// Canonical states, in display order:
//
//	initial -> reviewing -> visits_completed -> absent
//
// Legacy labels are normalized before validation so that they are accepted
// transparently:
//
//	reviewed -> reviewing
//	visited  -> visits_completed
//	repaired -> absent
//
// Transitions are unrestricted in direction; a record may move from absent
// back to initial.
package state
