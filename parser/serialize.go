package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Note the trailing space.
const DDB_HEADER = "# The Disk Data Base "

func (self ExtentLine) String() string {
	return fmt.Sprintf("%s %d %s \"%s\"",
		self.Access, self.Sectors, self.Type, self.Filename)
}

// ExtentDescription is the extent block, one line per extent with no
// trailing newline.
func (self *Descriptor) ExtentDescription() string {
	lines := make([]string, 0, len(self.Extents))
	for _, extent := range self.Extents {
		lines = append(lines, extent.String())
	}
	return strings.Join(lines, "\n")
}

// WriteTo serializes the descriptor in the fixed twoGbMaxExtentSparse
// layout. There is no newline after the last field.
func (self *Descriptor) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, `# Disk DescriptorFile
version=%d
CID=%s
parentCID=%s
createType="%s"

# Extent description
%s

%s
#DDB

ddb.adapterType = "%s"
ddb.encoding = "%s"
ddb.geometry.cylinders = "%d"
ddb.geometry.heads = "%d"
ddb.geometry.sectors = "%d"
ddb.longContentID = "%s"
ddb.toolsInstallType = "%s"
ddb.toolsVersion = "%s"
ddb.virtualHWVersion = "%s"`,
		self.Version, self.CID, self.ParentCID, self.CreateType,
		self.ExtentDescription(), DDB_HEADER,
		self.AdapterType, self.Encoding, self.Cylinders,
		self.Heads, self.Sectors, self.LongContentID,
		self.ToolsInstallType, self.ToolsVersion, self.VirtualHWVersion)
	return int64(n), err
}

func (self *Descriptor) Bytes() []byte {
	buf := &bytes.Buffer{}
	self.WriteTo(buf)
	return buf.Bytes()
}

func (self *Descriptor) String() string {
	return string(self.Bytes())
}
