// Package workorder provides the WorkOrder aggregate: a field-service ticket
// that moves through the lifecycle defined in package state and sits at a
// manual position inside its state column.
//
// The package includes:
//   - WorkOrder: the aggregate root
//   - Number: the immutable six digit business key
//   - Details: the pre-visit content supplied at creation
//   - Patch: a partial update where every field is optional
//   - Position: one entry of a bulk reorder
//
// Key business rules:
//   - New work orders always start in the initial state
//   - Device and municipality are never blank
//   - The number cannot change after creation
//   - Order values are only compared within the same state
package workorder
