// Package services provides domain services that span more than one work
// order or combine the aggregate with caller identity.
//
// The package includes:
//   - OrderingCoordinator: per-column order assignment and bulk reorder planning
//   - AccessPolicy: role and ownership rules consulted by every use case
package services
