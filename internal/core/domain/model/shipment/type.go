package shipment

import (
	"fmt"

	"shiporders/internal/pkg/errs"
)

// Type distinguishes the service level of a shipment.
type Type int

const (
	// TypeUnknown represents an invalid or undefined shipment type.
	TypeUnknown Type = iota

	TypeStandard
	TypeExpress
	TypePriority
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeStandard: "Standard",
		TypeExpress:  "Express",
		TypePriority: "Priority",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeStandard: "Standard",
		TypeExpress:  "Express",
		TypePriority: "Priority",
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid",
			fmt.Errorf("%d is not a valid shipment type", t))
	}
	return nil
}

// String returns the human-readable name of the shipment type.
// This method implements the fmt.Stringer interface.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TypeFromString parses a shipment type from its string representation.
func TypeFromString(s string) (Type, error) {
	for typ, str := range getValidTypeStrings() {
		if str == s {
			return typ, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type is invalid",
		fmt.Errorf("%q is not a valid shipment type", s))
}
