// Package ship provides the fleet-carrier aggregate for the stowage system.
// It implements the Ship aggregate root that owns a bounded, ordered
// collection of cargo containers and enforces fleet-level invariants
// independent of any single container's own loading rule.
//
// Key business rules:
//   - A ship never holds more containers than its maximum container count
//   - The aggregate cargo mass on board never exceeds the weight capacity
//   - Both checks run before any mutation (check-then-commit)
//   - Containers are referenced, not owned: removing one from a ship does
//     not destroy it, and the insertion order is the load order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package ship
