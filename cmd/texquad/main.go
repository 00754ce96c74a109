// Command texquad draws a textured quad in an OpenGL window. The mouse
// wheel zooms.
package main

import (
	"log"
	"runtime"

	"go.creack.net/texquad/app"
	"go.creack.net/texquad/cli"
)

func init() {
	// glfw must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
