package recovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/Velocidex/go-vmdk-recover/parser"
	"github.com/alecthomas/units"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DiscoverExtents selects the extent entries. Unless listing_order is set
// they are sorted by their numeric index.
func DiscoverExtents(
	logger logrus.FieldLogger, entries []Entry, listing_order bool) ([]Entry, error) {
	var res []Entry
	for _, entry := range entries {
		if entry.Kind == ExtentEntry {
			res = append(res, entry)
		}
	}

	if len(res) == 0 {
		return nil, ErrNoExtentFiles
	}

	if !listing_order {
		sort.SliceStable(res, func(i, j int) bool {
			if res[i].Index != res[j].Index {
				return res[i].Index < res[j].Index
			}
			return res[i].Name < res[j].Name
		})
		checkSequence(logger, res)
	}

	return res, nil
}

// checkSequence warns about gaps and repeated indexes. Both are written out
// as found.
func checkSequence(logger logrus.FieldLogger, extents []Entry) {
	for i := 1; i < len(extents); i++ {
		prev, current := extents[i-1], extents[i]
		switch {
		case current.Index == prev.Index:
			logger.Warnf("Extents %v and %v share index %d",
				prev.Name, current.Name, current.Index)
		case current.Index != prev.Index+1:
			logger.Warnf("Extent index gap between %v and %v",
				prev.Name, current.Name)
		}
	}
}

// MapExtentSizes stats every extent, preserving order.
func MapExtentSizes(
	logger logrus.FieldLogger, dir string, extents []Entry) ([]parser.ExtentFile, error) {
	res := make([]parser.ExtentFile, 0, len(extents))
	for _, extent := range extents {
		full_path := filepath.Join(dir, extent.Name)
		st, err := os.Stat(full_path)
		if err != nil {
			return nil, errors.Wrapf(err, "Can not stat %v", full_path)
		}

		logger.Debugf("%v: %d bytes (%v)", extent.Name, st.Size(),
			units.Base2Bytes(st.Size()))
		res = append(res, parser.ExtentFile{
			Filename: extent.Name,
			Size:     st.Size(),
		})
	}

	return res, nil
}
