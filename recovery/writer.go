package recovery

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteDescriptor replaces path with data. The data goes to a temporary
// file in the same directory first so a failed write leaves any previous
// descriptor untouched.
func WriteDescriptor(path string, data []byte) error {
	path, mode, err := resolveOutput(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".descriptor-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "Can not create %v", path)
	}
	tmp_name := tmp.Name()
	defer os.Remove(tmp_name)

	err = writeAndSync(tmp, data, mode)
	if err != nil {
		tmp.Close()
		return errors.Wrapf(err, "Can not write %v", path)
	}

	err = tmp.Close()
	if err != nil {
		return errors.Wrapf(err, "Can not write %v", path)
	}

	err = os.Rename(tmp_name, path)
	if err != nil {
		return errors.Wrapf(err, "Can not write %v", path)
	}

	return nil
}

// resolveOutput follows a symlinked output to its target and returns the
// permission bits to keep.
func resolveOutput(path string) (string, os.FileMode, error) {
	st, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return path, 0644, nil
	}
	if err != nil {
		return "", 0, errors.Wrapf(err, "Can not stat %v", path)
	}

	if st.Mode()&os.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(path)
		if os.IsNotExist(err) {
			// Dangling link, create its target.
			link, err := os.Readlink(path)
			if err != nil {
				return "", 0, errors.Wrapf(err, "Can not read link %v", path)
			}
			if !filepath.IsAbs(link) {
				link = filepath.Join(filepath.Dir(path), link)
			}
			return link, 0644, nil
		}
		if err != nil {
			return "", 0, errors.Wrapf(err, "Can not resolve %v", path)
		}

		st, err = os.Stat(target)
		if err != nil {
			return "", 0, errors.Wrapf(err, "Can not stat %v", target)
		}
		path = target
	}

	return path, st.Mode().Perm(), nil
}

func writeAndSync(fd *os.File, data []byte, mode os.FileMode) error {
	err := fd.Chmod(mode)
	if err != nil {
		return err
	}

	_, err = fd.Write(data)
	if err != nil {
		return err
	}

	return fd.Sync()
}
