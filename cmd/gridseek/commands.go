package main

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridseek/cipher"
	"github.com/katalvlaran/gridseek/internal/harness"
	"github.com/katalvlaran/gridseek/locator"
)

func runEncode(cmd *cobra.Command, args []string) error {
	code, err := cipher.Encode(strings.Join(args, " "), shift)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	text, err := cipher.Decode(args[0], shift)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runLocate(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	fx, err := harness.LoadFixture(fixturePath)
	if err != nil {
		return err
	}
	d, err := fx.Device(locator.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build device: %w", err)
	}

	locate := d.Locate
	if linear {
		locate = d.LocateLinear
	}
	out := cmd.OutOrStdout()
	m, ok := locate(value)
	if !ok {
		fmt.Fprintf(out, "not found (scans=%d)\n", d.Scans())
		return nil
	}
	fmt.Fprintf(out, "%s %s scans=%d\n", m.Label, m.Coord, m.Scans)
	return nil
}

func runFixture(cmd *cobra.Command, args []string) error {
	if fixtureSize <= 0 {
		return fmt.Errorf("invalid fixture size: %d", fixtureSize)
	}
	fx, err := harness.NewFixture(harness.GenerateGrid(fixtureSize, fixtureSize, fixtureSeed), fixtureShift)
	if err != nil {
		return err
	}
	if err := fx.Save(args[0]); err != nil {
		return err
	}
	logger.Info("fixture written", zap.String("path", args[0]), zap.Int("size", fixtureSize))
	fmt.Fprintln(cmd.OutOrStdout(), args[0])
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	bc := cfg.Bench
	if outDir != "" {
		bc.OutputDir = outDir
	}
	r, err := harness.NewRunner(bc, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep, err := r.Run(ctx)
	if err != nil {
		if len(rep.Sizes) == 0 {
			return err
		}
		// keep what finished before the interrupt
		logger.Warn("benchmark interrupted", zap.Error(err), zap.Int("sizes_done", len(rep.Sizes)))
	}
	files, werr := r.Write(rep, bc.OutputDir)
	if werr != nil {
		return werr
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return err
}
