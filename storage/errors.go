package storage

import "errors"

// ErrFarmInactive is returned when a record or invoice targets a farm that
// does not exist or is deactivated. Handlers map it to HTTP 400.
var ErrFarmInactive = errors.New("selected farm is not active")
