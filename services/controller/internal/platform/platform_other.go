//go:build !nucleof103rb && !rp2040 && !rp2350

package platform

import (
	"nucleoctl-go/errcode"
	"nucleoctl-go/services/controller"
)

// Echo has no hardware to bind on this target; firmware binaries are built
// with TinyGo for a known board.
func Echo() (controller.Config, error) {
	return controller.Config{}, errcode.Unsupported
}

func Control() (controller.Config, error) {
	return controller.Config{}, errcode.Unsupported
}
