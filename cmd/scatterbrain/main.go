// Command scatterbrain is the CLI entrypoint: the server, the MCP
// frontend, and the plan/task/move/lease/notes/shell/watch subcommands all
// live under cmd, which this just invokes.
package main

import "github.com/scatterbrain-dev/scatterbrain/cmd"

func main() {
	cmd.Execute()
}
