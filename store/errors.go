package store

import "fmt"

var (
	// ErrInvalidReference - an insert referenced a record that does not exist
	ErrInvalidReference = fmt.Errorf("referenced record does not exist")

	// ErrCitizenNotFound - no citizen account matches the given identity
	ErrCitizenNotFound = fmt.Errorf("there is no citizen account associated with this mobile number")

	// ErrCitizenTaken - a citizen account already exists for the mobile number
	ErrCitizenTaken = fmt.Errorf("citizen account has been registered or has been taken")

	// ErrNotificationNotFound - no notification record matches the given id
	ErrNotificationNotFound = fmt.Errorf("notification record does not exist")

	// ErrStorageUnavailable - the underlying store could not be reached.
	// Callers must treat this as a failure, never as an empty result.
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
)

// wrapStorage tags a driver error as a storage availability failure so
// callers can test for it with errors.Is
func wrapStorage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
