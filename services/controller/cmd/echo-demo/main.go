// Command echo-demo: serial echo firmware with case-conversion modes.
//
// Received text is buffered and echoed per the active mode; the user button
// cycles modes and the status LED shows the mode pattern.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target nucleo-f103rb ./services/controller/cmd/echo-demo
//	tinygo flash -target pico          ./services/controller/cmd/echo-demo
package main

import (
	"context"
	"time"

	"nucleoctl-go/services/controller"
	"nucleoctl-go/services/controller/internal/platform"
)

func main() {
	// Let the debug link enumerate before the banner.
	time.Sleep(2 * time.Second)

	cfg, err := platform.Echo()
	if err != nil {
		println("echo-demo: unsupported target:", err.Error())
		return
	}
	cfg.Diag = controller.PrintlnDiag{}

	ctl, err := controller.New(cfg)
	if err != nil {
		println("echo-demo: config:", err.Error())
		return
	}
	ctl.Run(context.Background())
}
