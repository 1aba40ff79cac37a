package recovery

import (
	"github.com/Velocidex/go-vmdk-recover/parser"
	"github.com/alecthomas/units"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Directory holding the .vmx file and the extents.
	Dir string

	// Destination of the descriptor.
	Output string

	// Keep extents in directory listing order instead of sorting by index.
	ListingOrder bool

	// Write the configured SCSI device type as ddb.adapterType.
	AdapterFromConfig bool

	DryRun bool
}

// BuildDescriptor runs every stage short of writing the output.
func BuildDescriptor(
	logger logrus.FieldLogger, options Options) (*parser.Descriptor, error) {
	entries, err := ListDirectory(logger, options.Dir)
	if err != nil {
		return nil, err
	}

	device_type, err := ResolveDeviceType(logger, options.Dir, entries)
	if err != nil {
		return nil, err
	}
	logger.Infof("Device type: %v", device_type)

	extents, err := DiscoverExtents(logger, entries, options.ListingOrder)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d VMDK files.", len(extents))

	sizes, err := MapExtentSizes(logger, options.Dir, extents)
	if err != nil {
		return nil, err
	}
	logger.Debugf("VMDK file lengths: %v", sizes)

	descriptor := parser.NewSplitSparseDescriptor(sizes, device_type)
	if options.AdapterFromConfig {
		descriptor.AdapterType = device_type
	}

	logger.Infof("Extent description:\n%v", descriptor.ExtentDescription())
	logger.Infof("Cylinders: %d (%v)", descriptor.Cylinders,
		units.Base2Bytes(parser.TotalSize(sizes)))

	return descriptor, nil
}

// Recover rebuilds the descriptor and writes it to options.Output.
func Recover(
	logger logrus.FieldLogger, options Options) (*parser.Descriptor, error) {
	descriptor, err := BuildDescriptor(logger, options)
	if err != nil {
		return nil, err
	}

	if options.DryRun {
		logger.Infof("VMDK content:\n%v", descriptor)
		return descriptor, nil
	}
	logger.Debugf("VMDK content:\n%v", descriptor)

	logger.Infof("Writing VMDK file to %v", options.Output)
	err = WriteDescriptor(options.Output, descriptor.Bytes())
	if err != nil {
		return nil, err
	}

	return descriptor, nil
}
