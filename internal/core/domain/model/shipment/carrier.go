package shipment

import (
	"fmt"

	"shiporders/internal/pkg/errs"
)

// Carrier identifies the company transporting a shipment.
type Carrier int

const (
	// CarrierUnknown represents an invalid or undefined carrier.
	CarrierUnknown Carrier = iota

	CarrierDHL
	CarrierFedEx
	CarrierUPS
	CarrierDPD
)

func getCarrierStrings() map[Carrier]string {
	return map[Carrier]string{
		CarrierUnknown: "Unknown",
		CarrierDHL:     "DHL",
		CarrierFedEx:   "FedEx",
		CarrierUPS:     "UPS",
		CarrierDPD:     "DPD",
	}
}

func getValidCarrierStrings() map[Carrier]string {
	//nolint:exhaustive // CarrierUnknown is intentionally excluded as it's invalid
	return map[Carrier]string{
		CarrierDHL:   "DHL",
		CarrierFedEx: "FedEx",
		CarrierUPS:   "UPS",
		CarrierDPD:   "DPD",
	}
}

// Validate checks if the Carrier value is valid.
func (c Carrier) Validate() error {
	if _, ok := getValidCarrierStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier is invalid",
			fmt.Errorf("%d is not a valid carrier", c))
	}
	return nil
}

// String returns the human-readable name of the carrier.
// This method implements the fmt.Stringer interface.
func (c Carrier) String() string {
	if str, ok := getCarrierStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// CarrierFromString parses a carrier from its string representation.
func CarrierFromString(s string) (Carrier, error) {
	for carrier, str := range getValidCarrierStrings() {
		if str == s {
			return carrier, nil
		}
	}
	return CarrierUnknown, errs.NewValueIsInvalidErrorWithCause("carrier is invalid",
		fmt.Errorf("%q is not a valid carrier", s))
}
