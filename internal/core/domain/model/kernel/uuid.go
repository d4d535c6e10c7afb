package kernel

import (
	"fmt"

	"stowage/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID,
// which can only arise when the identifier bypassed the constructors.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies ship aggregates. It is a thin value object over
// github.com/google/uuid: immutable once constructed, comparable with
// IsEqual, and with a Validate method that rejects the zero value so a
// ship can never be built around an uninitialized identity.
//
// Always obtain a UUID through NewUUID (fresh identity), UUIDFromString
// (request parsing), or UUIDFromBytes (persistence rehydration); a UUID
// declared as a zero value fails Validate.
//
// Example:
//
//	id := kernel.NewUUID()
//	vessel, err := ship.NewShip(id, "MV Aurora", 22.5, 3, 40000)
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a fresh random (version 4) identifier. Use this when
// registering a new aggregate; every other construction path starts from
// an identity that already exists somewhere.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the textual form of an identifier, as it arrives
// in URL path parameters and request bodies. Anything uuid.Parse accepts
// is accepted here; on failure the error wraps the parse error.
//
// Example:
//
//	id, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid ship ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes rebuilds an identifier from its 16-byte binary form, the
// shape it takes when scanned out of a uuid database column. The result
// is validated, so a stored nil UUID surfaces as an error instead of a
// silently invalid identity.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// form used in logs, API responses, and text database columns.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped uuid.UUID for persistence mappers that store
// the identifier in a native uuid column. Slice it (`id.Bytes()[:]`) when
// raw bytes are needed. Prefer the higher-level methods elsewhere.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values carry the same identifier.
//
// Example:
//
//	if shipID.IsEqual(cmd.ShipID()) {
//	    // same aggregate
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value with ErrUUIDIsNotConstructed. Aggregate
// constructors call this so an identity that skipped the factory
// functions cannot leak into the domain.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
