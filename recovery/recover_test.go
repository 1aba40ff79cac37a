package recovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeVM(t *testing.T) string {
	dir := t.TempDir()
	makeFile(t, dir, "disk.vmx", testVMX)
	makeFile(t, dir, "disk.vmsd", "")
	makeFile(t, dir, "vmware.log", "")
	makeExtent(t, dir, "disk-s002.vmdk", 2097152)
	makeExtent(t, dir, "disk-s001.vmdk", 4194304)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "disk-s001.vmdk.lck"), 0755))

	return dir
}

func TestRecover(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := makeVM(t)
	output := filepath.Join(t.TempDir(), "disk.vmdk")

	descriptor, err := Recover(logger, Options{Dir: dir, Output: output})
	require.NoError(t, err)
	assert.Equal(t, "lsilogic", descriptor.DeviceType)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	goldie.Assert(t, "TestRecover", data)
}

func TestRecoverOverwrites(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := makeVM(t)
	output := filepath.Join(dir, "disk.vmdk")
	makeFile(t, dir, "disk.vmdk", "stale descriptor with a much longer body")

	_, err := Recover(logger, Options{Dir: dir, Output: output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	goldie.Assert(t, "TestRecover", data)

	// No temporary files are left behind.
	matches, err := filepath.Glob(filepath.Join(dir, ".descriptor-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRecoverAdapterFromConfig(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := makeVM(t)
	output := filepath.Join(t.TempDir(), "disk.vmdk")

	descriptor, err := Recover(logger, Options{
		Dir: dir, Output: output, AdapterFromConfig: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "lsilogic", descriptor.AdapterType)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ddb.adapterType = "lsilogic"`)
}

func TestRecoverDryRun(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := makeVM(t)
	output := filepath.Join(t.TempDir(), "disk.vmdk")

	descriptor, err := Recover(logger, Options{
		Dir: dir, Output: output, DryRun: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, len(descriptor.Extents))

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRecoverNoExtents(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := t.TempDir()
	makeFile(t, dir, "disk.vmx", testVMX)
	output := filepath.Join(t.TempDir(), "disk.vmdk")

	_, err := Recover(logger, Options{Dir: dir, Output: output})
	assert.True(t, errors.Is(err, ErrNoExtentFiles))

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRecoverNoConfig(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := t.TempDir()
	makeExtent(t, dir, "disk-s001.vmdk", 512)
	output := filepath.Join(t.TempDir(), "disk.vmdk")

	_, err := Recover(logger, Options{Dir: dir, Output: output})
	assert.True(t, errors.Is(err, ErrMissingConfigFile))

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestRecoverMissingDirectory(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()

	_, err := Recover(logger, Options{
		Dir:    filepath.Join(t.TempDir(), "missing"),
		Output: filepath.Join(t.TempDir(), "disk.vmdk"),
	})
	assert.Error(t, err)
}

func TestRecoverUnwritableOutput(t *testing.T) {
	logger, _ := logrus_test.NewNullLogger()
	dir := makeVM(t)

	_, err := Recover(logger, Options{
		Dir:    dir,
		Output: filepath.Join(dir, "no-such-dir", "disk.vmdk"),
	})
	assert.Error(t, err)
}
