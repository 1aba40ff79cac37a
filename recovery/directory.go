package recovery

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListDirectory classifies every entry of dir. Entries are returned in the
// order the filesystem lists them, which is not necessarily sorted.
func ListDirectory(logger logrus.FieldLogger, dir string) ([]Entry, error) {
	fd, err := os.Open(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Can not open directory %v", dir)
	}
	defer fd.Close()

	infos, err := fd.Readdir(-1)
	if err != nil {
		return nil, errors.Wrapf(err, "Can not list directory %v", dir)
	}

	res := make([]Entry, 0, len(infos))
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		res = append(res, ClassifyEntry(info.Name(), info.IsDir()))
		names = append(names, info.Name())
	}

	logger.Debugf("All files: %v", names)
	return res, nil
}
