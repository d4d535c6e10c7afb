package container

import (
	"stowage/internal/core/domain/model/kernel"
	"stowage/internal/pkg/errs"
)

// RefrigeratedContainer is a cargo container variant for perishable goods.
// It carries descriptive attributes only and uses the base loading rule
// verbatim: the required temperature is recorded but deliberately not
// validated against any range, and there is no Load override.
type RefrigeratedContainer struct {
	Container

	// productType names the kind of goods carried, e.g. "Bananas"
	productType string

	// requiredTemperature the goods must be kept at, in degrees Celsius
	requiredTemperature float64
}

// NewRefrigeratedContainer creates a new RefrigeratedContainer.
//
// The base attributes are validated exactly as in NewContainer; productType
// must not be empty. requiredTemperature is accepted as-is, negative values
// included.
func NewRefrigeratedContainer(
	serialNumber kernel.SerialNumber,
	cargoMass float64,
	height float64,
	tareWeight float64,
	depth float64,
	maximumPayload float64,
	productType string,
	requiredTemperature float64,
) (*RefrigeratedContainer, error) {
	if productType == "" {
		return nil, errs.NewValueIsRequiredError("productType")
	}

	base, err := NewContainer(serialNumber, cargoMass, height, tareWeight, depth, maximumPayload)
	if err != nil {
		return nil, err
	}

	return &RefrigeratedContainer{
		Container:           *base,
		productType:         productType,
		requiredTemperature: requiredTemperature,
	}, nil
}

// ProductType returns the kind of goods the container carries.
func (c *RefrigeratedContainer) ProductType() string {
	return c.productType
}

// RequiredTemperature returns the temperature the goods must be kept at.
func (c *RefrigeratedContainer) RequiredTemperature() float64 {
	return c.requiredTemperature
}
