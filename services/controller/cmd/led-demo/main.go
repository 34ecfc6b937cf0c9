// Command led-demo: serial LED control firmware.
//
// Single-byte commands enable, disable and toggle the four LED channel
// groups; holding the user button drives the controlled group, subject to
// the inversion flag.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target nucleo-f103rb ./services/controller/cmd/led-demo
//	tinygo flash -target pico          ./services/controller/cmd/led-demo
package main

import (
	"context"
	"time"

	"nucleoctl-go/services/controller"
	"nucleoctl-go/services/controller/internal/platform"
)

func main() {
	time.Sleep(2 * time.Second)

	cfg, err := platform.Control()
	if err != nil {
		println("led-demo: unsupported target:", err.Error())
		return
	}
	cfg.Diag = controller.PrintlnDiag{}

	ctl, err := controller.New(cfg)
	if err != nil {
		println("led-demo: config:", err.Error())
		return
	}
	ctl.Run(context.Background())
}
