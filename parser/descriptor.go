package parser

import (
	"github.com/alecthomas/units"
)

const (
	SECTOR_SIZE = 512

	TWO_GB_MAX_EXTENT_SPARSE = "twoGbMaxExtentSparse"

	// Sector count written for every extent except the last one of a
	// twoGbMaxExtentSparse image.
	MAX_EXTENT_SECTORS = int64(2*units.GiB) / SECTOR_SIZE

	// Bytes per cylinder at 255 heads and 63 sectors per track. The
	// serialized geometry still says 16 heads.
	CYLINDER_SIZE = 255 * 63 * SECTOR_SIZE

	DEFAULT_ADAPTER_TYPE = "ide"
)

// ExtentLine is a single line of the "# Extent description" block:
// RW 4194304 SPARSE "disk-s001.vmdk"
type ExtentLine struct {
	Access   string
	Sectors  int64
	Type     string
	Filename string
}

// ExtentFile is an extent data file and its size on disk.
type ExtentFile struct {
	Filename string
	Size     int64
}

// Descriptor holds every field of a split sparse descriptor. Fields are
// serialized in a fixed order by WriteTo.
type Descriptor struct {
	Version    int
	CID        string
	ParentCID  string
	CreateType string

	Extents []ExtentLine

	AdapterType      string
	Encoding         string
	Cylinders        int64
	Heads            int
	Sectors          int
	LongContentID    string
	ToolsInstallType string
	ToolsVersion     string
	VirtualHWVersion string

	// The adapter implementation found in the VM configuration. It is
	// only serialized when copied into AdapterType.
	DeviceType string
}

func NewDescriptor() *Descriptor {
	return &Descriptor{
		Version:          1,
		CID:              "d37878a6",
		ParentCID:        "ffffffff",
		CreateType:       TWO_GB_MAX_EXTENT_SPARSE,
		AdapterType:      DEFAULT_ADAPTER_TYPE,
		Encoding:         "windows-1252",
		Heads:            16,
		Sectors:          63,
		LongContentID:    "88ac9fad6dd46cf5aa161c50d37878a6",
		ToolsInstallType: "4",
		ToolsVersion:     "12352",
		VirtualHWVersion: "4",
	}
}

// NewSplitSparseDescriptor builds the descriptor for an ordered set of
// extent files. All but the last extent are assumed to be full sized.
func NewSplitSparseDescriptor(
	extents []ExtentFile, device_type string) *Descriptor {
	res := NewDescriptor()
	res.DeviceType = device_type
	res.Extents = ExtentLines(extents)
	res.Cylinders = Cylinders(extents)

	return res
}

func ExtentLines(extents []ExtentFile) []ExtentLine {
	res := make([]ExtentLine, 0, len(extents))
	for idx, extent := range extents {
		sectors := MAX_EXTENT_SECTORS
		if idx == len(extents)-1 {
			sectors = extent.Size / SECTOR_SIZE
		}

		res = append(res, ExtentLine{
			Access:   "RW",
			Sectors:  sectors,
			Type:     "SPARSE",
			Filename: extent.Filename,
		})
	}
	return res
}

func TotalSize(extents []ExtentFile) int64 {
	total := int64(0)
	for _, extent := range extents {
		total += extent.Size
	}
	return total
}

func Cylinders(extents []ExtentFile) int64 {
	return CylindersForSize(TotalSize(extents))
}

func CylindersForSize(total_size int64) int64 {
	return total_size / CYLINDER_SIZE
}
