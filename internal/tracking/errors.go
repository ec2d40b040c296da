package tracking

import "errors"

var (
	ErrPartNotFound       = errors.New("part not found")
	ErrTurbineNotFound    = errors.New("turbine not found")
	ErrInstanceNotFound   = errors.New("part instance not found")
	ErrPartMasterNotFound = errors.New("part master not found")

	ErrAlreadyInstalled     = errors.New("part is already installed in a turbine")
	ErrNoActiveInstallation = errors.New("part has no active installation record")

	ErrDuplicateSerialNumber = errors.New("serial number already exists")
	ErrDuplicatePartNumber   = errors.New("part number already exists")
)
