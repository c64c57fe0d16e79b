package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/mattock/dmgcore/cpu"
	"github.com/mattock/dmgcore/memory"
	"github.com/mattock/dmgcore/pacer"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmgcore"
	app.Description = "Sharp LR35902 CPU core runner"
	app.Usage = "dmgcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the flat ROM image",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Stop after this many frames (0 = run until a terminal condition)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "turbo",
			Usage: "Skip frame-boundary sleeping",
		},
		cli.BoolFlag{
			Name:  "delayed-ei",
			Usage: "Delay EI's effect by one instruction, matching real hardware timing",
		},
		cli.BoolFlag{
			Name:  "serial-stdout",
			Usage: "Mirror writes to the serial data register to stdout",
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing strategy: adaptive or ticker",
			Value: "adaptive",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("dmgcore exited with an error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	mmu := memory.NewWithCartridge(memory.NewCartridgeWithData(data))
	if c.Bool("serial-stdout") {
		mmu.SetSerialSink(func(b byte) { fmt.Fprintf(os.Stdout, "%c", b) })
	}

	core := cpu.New(mmu)
	core.Config.DelayedEI = c.Bool("delayed-ei")

	var limiter pacer.Limiter
	switch c.String("limiter") {
	case "ticker":
		limiter = pacer.NewTickerLimiter()
	default:
		limiter = pacer.NewAdaptiveLimiter()
	}
	p := pacer.New(limiter, c.Int("frames"))
	p.Turbo = c.Bool("turbo")

	slog.Info("starting emulation", "rom", romPath, "turbo", p.Turbo, "frames", c.Int("frames"))

	for {
		if err := core.Tick(); err != nil {
			return reportTermination(core, err)
		}
		if err := p.CheckBoundary(core.InstructionCount()); err != nil {
			return reportTermination(core, err)
		}
	}
}

func reportTermination(core *cpu.CPU, err error) error {
	var passed cpu.UnitTestPassed
	var failed cpu.UnitTestFailed
	var unimpl cpu.UnimplementedOpcode
	var timeout cpu.Timeout

	switch {
	case errors.As(err, &passed):
		slog.Info("unit test passed", "pc", core.PC(), "cycle", core.Cycle())
		return nil
	case errors.As(err, &failed):
		slog.Error("unit test failed", "pc", core.PC(), "cycle", core.Cycle())
		return err
	case errors.As(err, &unimpl):
		slog.Error("unimplemented opcode", "opcode", fmt.Sprintf("0x%02X", unimpl.Opcode), "pc", core.PC())
		return err
	case errors.As(err, &timeout):
		slog.Info("profile run complete", "frames", timeout.Frames, "seconds", timeout.Seconds)
		return nil
	default:
		return err
	}
}
