package recovery

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	DeviceTypeRegex = regexp.MustCompile(`scsi[0-9]+.virtualDev = "(.+)"`)
)

// FindConfigFile returns the first configuration file in listing order.
func FindConfigFile(entries []Entry) (string, error) {
	for _, entry := range entries {
		if entry.Kind == ConfigEntry {
			return entry.Name, nil
		}
	}
	return "", ErrMissingConfigFile
}

// ResolveDeviceType returns the SCSI adapter implementation declared by the
// VM configuration file in dir.
func ResolveDeviceType(
	logger logrus.FieldLogger, dir string, entries []Entry) (string, error) {
	config_file, err := FindConfigFile(entries)
	if err != nil {
		return "", err
	}

	full_path := filepath.Join(dir, config_file)
	logger.Debugf("Reading VM configuration from %v", full_path)

	fd, err := os.Open(full_path)
	if err != nil {
		return "", errors.Wrapf(err, "Can not open %v", full_path)
	}
	defer fd.Close()

	return scanDeviceType(fd, full_path)
}

func scanDeviceType(reader io.Reader, full_path string) (string, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		match := DeviceTypeRegex.FindStringSubmatch(scanner.Text())
		if len(match) > 0 {
			return match[1], nil
		}
	}

	err := scanner.Err()
	if err != nil {
		return "", errors.Wrapf(err, "Can not read %v", full_path)
	}

	return "", errors.Wrapf(ErrMissingDeviceType, "in %v", full_path)
}
