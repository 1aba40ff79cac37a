package recovery

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingConfigFile = errors.New("No VMX file found")
	ErrMissingDeviceType = errors.New("No device type found")
	ErrNoExtentFiles     = errors.New("No VMDK extent files found")
)
