// Command varconf validates and inspects hierarchical configuration files.
//
//	varconf check  -s schema.yaml -r server config.yaml
//	varconf dump   -s schema.yaml -r server config.toml
//	varconf get    -s schema.yaml -r server config.yaml port --type int
//	varconf usage  -s schema.yaml
//	varconf watch  -s schema.yaml -r server config.yaml
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd()

	err := cmd.Execute()
	if err != nil {
		newPrinter(cmd.ErrOrStderr()).fail("%v", err)
		os.Exit(1)
	}
}
