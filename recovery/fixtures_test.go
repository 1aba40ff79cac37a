package recovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testVMX = `.encoding = "windows-1252"
config.version = "8"
virtualHW.version = "4"
scsi0.present = "TRUE"
scsi0.virtualDev = "lsilogic"
memsize = "512"
scsi0:0.present = "TRUE"
scsi0:0.fileName = "disk.vmdk"
`

// makeExtent creates a sparse file of the given size.
func makeExtent(t *testing.T, dir, name string, size int64) {
	fd, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer fd.Close()

	require.NoError(t, fd.Truncate(size))
}

func makeFile(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, name), []byte(content), 0644))
}
