// Package container provides domain entities and business logic for cargo
// containers in the stowage system. It implements the container family as a
// small polymorphic hierarchy dispatched through the Loadable capability.
//
// The package includes:
//   - Container: The base entity enforcing the absolute maximum-payload rule
//   - LiquidContainer: A variant with hazard-aware loading thresholds
//   - GasContainer: A pressurized variant that keeps hazard signaling wired
//   - RefrigeratedContainer: A descriptive variant using the base rule verbatim
//   - Loadable: The capability interface callers must hold so the
//     variant-specific loading rule is always the one invoked
//   - HazardNotifier: A fire-and-forget port for hazard warnings
//
// Key business rules:
//   - Cargo mass never exceeds the variant-specific threshold derived from
//     the maximum payload; a failed load leaves cargo mass untouched
//   - Hazardous liquids trigger a notification above half the maximum payload
//     but may still load up to the full payload
//   - Non-hazardous liquids are capped at 90% of the maximum payload
//   - Emptying a container always succeeds and zeroes the cargo mass
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package container
