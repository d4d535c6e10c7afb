// Package services contains domain services that implement business logic
// spanning multiple aggregates.
//
// Domain services are stateless and operate purely on domain model objects.
// They encapsulate decisions that do not naturally belong to any single
// aggregate, such as choosing which ship of a fleet should take a container.
package services
