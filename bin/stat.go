package main

import (
	"os"

	"github.com/Velocidex/go-vmdk-recover/parser"
	kingpin "github.com/alecthomas/kingpin/v2"
	ntfs_parser "www.velocidex.com/golang/go-ntfs/parser"
)

var (
	stat_command = app.Command(
		"stat", "Stat a vmdk descriptor file.")

	stat_command_file_arg = stat_command.Arg(
		"file", "The descriptor file to inspect",
	).Required().String()
)

func doStat() {
	fd, err := os.Open(*stat_command_file_arg)
	kingpin.FatalIfError(err, "Can not open descriptor")
	defer fd.Close()

	reader, err := ntfs_parser.NewPagedReader(fd, 1024, 100)
	kingpin.FatalIfError(err, "Can not open descriptor")

	st, err := fd.Stat()
	kingpin.FatalIfError(err, "Can not open descriptor")

	descriptor, err := parser.ParseDescriptor(reader, int(st.Size()))
	kingpin.FatalIfError(err, "Can not parse descriptor")

	Dump(descriptor.Stats())
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case stat_command.FullCommand():
			doStat()
		default:
			return false
		}
		return true
	})
}
