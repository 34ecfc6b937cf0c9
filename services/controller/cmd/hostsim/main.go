// Command hostsim runs the controller tick loop without hardware: stdin
// bytes are serial input (a terminal newline stands in for CR), stdout is
// the serial peer, and a designated key pulses the user button. State
// changes are published on an in-process bus and mirrored to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nucleoctl-go/bus"
	"nucleoctl-go/services/controller"
	"nucleoctl-go/x/strx"
)

type options struct {
	Board     string `toml:"board"`
	Variant   string `toml:"variant"`
	TickMS    uint32 `toml:"tick_ms"`
	BlinkMS   uint32 `toml:"blink_ms"`
	ModeRing  uint8  `toml:"mode_ring"`
	ButtonKey string `toml:"button_key"`
	HoldTicks int    `toml:"button_hold_ticks"`
}

func defaults() options {
	return options{
		Board:     "hostsim",
		Variant:   "echo",
		TickMS:    controller.DefaultTickMS,
		BlinkMS:   controller.DefaultBlinkMS,
		ModeRing:  4,
		ButtonKey: "\t",
		HoldTicks: 2,
	}
}

func main() {
	opts := defaults()
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "hostsim",
		Short:        "Run the LED controller tick loop against the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				if err := loadFile(cfgPath, &opts, cmd.Flags()); err != nil {
					return err
				}
			}
			return run(opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfgPath, "config", "", "TOML config file")
	fs.StringVar(&opts.Variant, "variant", opts.Variant, "command set: echo or control")
	fs.StringVar(&opts.Board, "board", opts.Board, "board name in the banner")
	fs.Uint32Var(&opts.TickMS, "tick", opts.TickMS, "tick period in ms")
	fs.Uint32Var(&opts.BlinkMS, "blink", opts.BlinkMS, "blink half-period in ms")
	fs.Uint8Var(&opts.ModeRing, "ring", opts.ModeRing, "button mode ring length (3 or 4)")
	fs.StringVar(&opts.ButtonKey, "button-key", opts.ButtonKey, "stdin byte that pulses the button")
	// Accept config-file style names on the command line too.
	fs.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadFile layers a TOML config under any flags the user set explicitly.
func loadFile(path string, opts *options, fs *pflag.FlagSet) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file := defaults()
	if err := toml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if !fs.Changed("variant") {
		opts.Variant = strx.Coalesce(file.Variant, opts.Variant)
	}
	if !fs.Changed("board") {
		opts.Board = strx.Coalesce(file.Board, opts.Board)
	}
	if !fs.Changed("tick") {
		opts.TickMS = file.TickMS
	}
	if !fs.Changed("blink") {
		opts.BlinkMS = file.BlinkMS
	}
	if !fs.Changed("ring") {
		opts.ModeRing = file.ModeRing
	}
	if !fs.Changed("button-key") {
		opts.ButtonKey = strx.Coalesce(file.ButtonKey, opts.ButtonKey)
	}
	opts.HoldTicks = file.HoldTicks
	return nil
}

func run(opts options) error {
	var variant controller.Variant
	switch opts.Variant {
	case "echo":
		variant = controller.VariantEcho
	case "control":
		variant = controller.VariantControl
	default:
		return fmt.Errorf("unknown variant %q (want echo or control)", opts.Variant)
	}

	key := byte('\t')
	if opts.ButtonKey != "" {
		key = opts.ButtonKey[0]
	}

	b := bus.NewBus(64)
	conn := b.NewConnection("hostsim")
	go printEvents(b.NewConnection("printer"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hb := &heartbeat{interval: 10 * time.Second}
	hb.Start(ctx, b.NewConnection("heartbeat"))

	sim := newSim(os.Stdin, os.Stdout, key, opts.HoldTicks)
	sim.Start()

	cfg := controller.Config{
		Variant:   variant,
		Board:     opts.Board,
		TickMS:    opts.TickMS,
		BlinkMS:   opts.BlinkMS,
		ModeRing:  opts.ModeRing,
		Button:    sim,
		Transport: sim,
		Diag:      busDiag{conn},
		Telemetry: busTelemetry{conn},
	}
	cfg.Status = []controller.OutputPin{newBusPin(conn, "status", 0)}
	for ch := controller.Channel(0); ch < controller.NumChannels; ch++ {
		cfg.Channels[ch] = []controller.OutputPin{newBusPin(conn, ch.String(), 0)}
	}

	ctl, err := controller.New(cfg)
	if err != nil {
		return err
	}

	ctl.Run(ctx)
	return nil
}
