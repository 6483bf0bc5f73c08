// tasks is a single-screen terminal task list.
//
// Usage:
//
//	tasks [flags]
//	tasks version
//	tasks config
//
// Flags:
//
//	-c, --config      Path to a YAML config file (default: ~/.config/tasks/config.yaml)
//	--no-alt-screen   Draw in the main screen instead of the alternate screen
//	--no-mouse        Disable mouse clicks on Add Task and Delete
//	--log             Write a log file
//	--log-level       debug, info, warn or error (default: info)
//	--log-file        Log file path (default: ~/.config/tasks/tasks.log)
package main

import (
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/tasks/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
