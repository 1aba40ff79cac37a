package parser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Descriptors are small text files; larger inputs are truncated.
	MAX_DESCRIPTOR_SIZE = 64 * 1024
)

var (
	StartExtentRegex = regexp.MustCompile("^# Extent description")
	ExtentRegex      = regexp.MustCompile(`^(RW|RDONLY|NOACCESS|R) (\d+) ([A-Z]+) "([^"]+)"`)
	FieldRegex       = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_.]*)\s*=\s*"?([^"]*)"?\s*$`)
)

// ParseDescriptor reads a text descriptor back into a Descriptor. Extent
// data files are never opened.
func ParseDescriptor(reader io.ReaderAt, size int) (*Descriptor, error) {
	res := &Descriptor{}

	if size > MAX_DESCRIPTOR_SIZE {
		size = MAX_DESCRIPTOR_SIZE
	}

	buf := make([]byte, size)
	n, err := reader.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return nil, err
	}

	if !strings.HasPrefix(string(buf[:n]), "# Disk DescriptorFile") {
		return nil, fmt.Errorf("Not a descriptor file")
	}

	state := ""
	for _, line := range strings.Split(string(buf[:n]), "\n") {
		line = strings.TrimRight(line, "\r")

		if StartExtentRegex.MatchString(line) {
			state = "Extents"
			continue
		}

		if state == "Extents" {
			match := ExtentRegex.FindStringSubmatch(line)
			if len(match) > 0 {
				sectors, err := strconv.ParseInt(match[2], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("While parsing extent %v: %w",
						match[4], err)
				}

				res.Extents = append(res.Extents, ExtentLine{
					Access:   match[1],
					Sectors:  sectors,
					Type:     match[3],
					Filename: match[4],
				})
				continue
			}
			state = ""
		}

		match := FieldRegex.FindStringSubmatch(line)
		if len(match) > 0 {
			err := res.setField(match[1], match[2])
			if err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

func (self *Descriptor) setField(key, value string) (err error) {
	switch key {
	case "version":
		self.Version, err = strconv.Atoi(value)
	case "CID":
		self.CID = value
	case "parentCID":
		self.ParentCID = value
	case "createType":
		self.CreateType = value
	case "ddb.adapterType":
		self.AdapterType = value
	case "ddb.encoding":
		self.Encoding = value
	case "ddb.geometry.cylinders":
		self.Cylinders, err = strconv.ParseInt(value, 10, 64)
	case "ddb.geometry.heads":
		self.Heads, err = strconv.Atoi(value)
	case "ddb.geometry.sectors":
		self.Sectors, err = strconv.Atoi(value)
	case "ddb.longContentID":
		self.LongContentID = value
	case "ddb.toolsInstallType":
		self.ToolsInstallType = value
	case "ddb.toolsVersion":
		self.ToolsVersion = value
	case "ddb.virtualHWVersion":
		self.VirtualHWVersion = value
	}

	if err != nil {
		return fmt.Errorf("Invalid value for %v: %w", key, err)
	}
	return nil
}
