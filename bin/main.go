package main

import (
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"
)

type CommandHandler func(command string) bool

var (
	app = kingpin.New("govmdk",
		"A tool for recovering split sparse vmdk descriptors.")

	verbosity_flag = app.Flag(
		"verbosity", "Verbosity level").Default("INFO").Enum(
		"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL")

	command_handlers []CommandHandler
)

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	for _, command_handler := range command_handlers {
		if command_handler(command) {
			break
		}
	}
}
