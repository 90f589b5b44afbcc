package estate

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them.
var (
	ErrNotFound             = errors.New("not found")
	ErrConstraintViolation  = errors.New("constraint violated")
	ErrValidation           = errors.New("validation failed")
	ErrReferentialIntegrity = errors.New("referenced row does not exist")
)

var (
	ErrOwnerNotFound    = fmt.Errorf("owner %w", ErrNotFound)
	ErrCityNotFound     = fmt.Errorf("city %w", ErrNotFound)
	ErrAddressNotFound  = fmt.Errorf("address %w", ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("property %w", ErrNotFound)
	ErrAgencyNotFound   = fmt.Errorf("agency %w", ErrNotFound)
	ErrListingNotFound  = fmt.Errorf("listing %w", ErrNotFound)
)

var (
	ErrPhoneNumberTaken    = fmt.Errorf("phone number already in use: %w", ErrConstraintViolation)
	ErrCityNameTaken       = fmt.Errorf("city name already exists: %w", ErrConstraintViolation)
	ErrRegistryNumberTaken = fmt.Errorf("registry number already in use: %w", ErrConstraintViolation)
	ErrCompanyCodeTaken    = fmt.Errorf("company code already in use: %w", ErrConstraintViolation)
)

var (
	ErrListingPriceRequired = fmt.Errorf("sale or rental price is required: %w", ErrValidation)
	ErrNegativeArea         = fmt.Errorf("area must not be negative: %w", ErrValidation)
	ErrInvalidArea          = fmt.Errorf("area must be a finite number: %w", ErrValidation)
	ErrNameRequired         = fmt.Errorf("name is required: %w", ErrValidation)
	ErrPhoneRequired        = fmt.Errorf("phone number is required: %w", ErrValidation)
	ErrRegistryRequired     = fmt.Errorf("registry number is required: %w", ErrValidation)
	ErrCompanyCodeRequired  = fmt.Errorf("company code is required: %w", ErrValidation)
)

var (
	ErrUnknownOwner    = fmt.Errorf("owner: %w", ErrReferentialIntegrity)
	ErrUnknownCity     = fmt.Errorf("city: %w", ErrReferentialIntegrity)
	ErrUnknownAddress  = fmt.Errorf("address: %w", ErrReferentialIntegrity)
	ErrUnknownProperty = fmt.Errorf("property: %w", ErrReferentialIntegrity)
	ErrUnknownAgency   = fmt.Errorf("agency: %w", ErrReferentialIntegrity)
)

// missingReference converts a lookup miss on a foreign id into its
// referential integrity error. Other errors pass through.
func missingReference(err error, kind error, id int64) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w (id %d)", kind, id)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
