package container

import (
	"fmt"

	"stowage/internal/pkg/errs"
)

// Kind identifies the concrete container variant behind the Loadable
// capability. The kind determines which loading rules apply and which
// type-specific attributes a container carries.
//
// Kind is a value object used wherever containers cross a boundary:
// registration requests, the persistence discriminator column, and
// read models.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindBasic is a general-purpose container with the base loading rule.
	KindBasic

	// KindLiquid is a liquid cargo container with hazard-aware loading rules.
	KindLiquid

	// KindGas is a pressurized gas container.
	KindGas

	// KindRefrigerated is a temperature-controlled container for perishables.
	KindRefrigerated
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:      "Unknown",
		KindBasic:        "Basic",
		KindLiquid:       "Liquid",
		KindGas:          "Gas",
		KindRefrigerated: "Refrigerated",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindBasic:        "Basic",
		KindLiquid:       "Liquid",
		KindGas:          "Gas",
		KindRefrigerated: "Refrigerated",
	}
}

// KindFromString parses a kind name as it appears in requests and storage.
//
// Returns:
//   - Kind: The matching kind for "Basic", "Liquid", "Gas" or "Refrigerated"
//   - error: ValueIsInvalidError for any other input
func KindFromString(value string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == value {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind is invalid",
		fmt.Errorf("%q is not a valid container kind", value),
	)
}

// Validate checks if the Kind value is valid.
//
// Valid kinds are: Basic, Liquid, Gas, Refrigerated.
// KindUnknown (0) and any other values are invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Kind value, including invalid ones.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindOf reports the concrete kind of a container behind the Loadable
// capability. Unrecognized implementations report KindUnknown.
func KindOf(c Loadable) Kind {
	switch c.(type) {
	case *LiquidContainer:
		return KindLiquid
	case *GasContainer:
		return KindGas
	case *RefrigeratedContainer:
		return KindRefrigerated
	case *Container:
		return KindBasic
	default:
		return KindUnknown
	}
}
