package main

import (
	"github.com/Velocidex/go-vmdk-recover/recovery"
)

var (
	recover_command = app.Command(
		"recover", "Rebuild the descriptor of a split sparse vmdk.").Default()

	recover_command_output_arg = recover_command.Arg(
		"output", "The output VMDK file",
	).Required().String()

	recover_command_dir = recover_command.Flag(
		"dir", "The directory of the VM").Default(".").String()

	recover_command_listing_order = recover_command.Flag(
		"listing-order", "Keep extents in directory listing order instead of sorting by index").Bool()

	recover_command_adapter_from_config = recover_command.Flag(
		"adapter-from-config", "Write the VM's SCSI device type as the adapter type").Bool()

	recover_command_dry_run = recover_command.Flag(
		"dry-run", "Log the descriptor without writing it").Bool()
)

func doRecover() {
	logger := makeLogger(*verbosity_flag)

	_, err := recovery.Recover(logger, recovery.Options{
		Dir:               *recover_command_dir,
		Output:            *recover_command_output_arg,
		ListingOrder:      *recover_command_listing_order,
		AdapterFromConfig: *recover_command_adapter_from_config,
		DryRun:            *recover_command_dry_run,
	})
	if err != nil {
		logger.WithError(err).Fatal("Can not recover descriptor")
	}
}

func init() {
	command_handlers = append(command_handlers, func(command string) bool {
		switch command {
		case recover_command.FullCommand():
			doRecover()
		default:
			return false
		}
		return true
	})
}
