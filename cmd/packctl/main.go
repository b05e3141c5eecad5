// packctl is a small diagnostic CLI for pkstream. It has no network
// transport of its own: it packs a scalar value read from stdin into an
// in-memory buffer, or unpacks a buffer of bytes into a printable
// value tree, exercising exactly the same Packer/Unpacker/Buffer the
// library ships.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nodegraph/pkstream/internal/config"
	"github.com/nodegraph/pkstream/pkstream"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: packctl <pack|unpack> [flags]")
	}

	subcommand, rest := args[0], args[1:]

	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	if hasVerboseFlag(rest) {
		level.Set(slog.LevelDebug)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	correlationID := uuid.New().String()
	logger = logger.With("correlation_id", correlationID)
	logger.Debug("starting", "subcommand", subcommand)

	switch subcommand {
	case "pack":
		return runPack(logger, rest)
	case "unpack":
		return runUnpack(logger, rest)
	default:
		return fmt.Errorf("unknown subcommand %q, want pack or unpack", subcommand)
	}
}

// hasVerboseFlag peeks for --verbose ahead of the subcommand's own
// pflag.FlagSet, since the logger must exist before flags are parsed.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--verbose" || a == "-v" {
			return true
		}
	}
	return false
}

func runPack(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("packctl pack", pflag.ContinueOnError)
	hexOut := flagSet.Bool("hex", false, "write hex-encoded bytes instead of raw bytes")
	flagSet.BoolP("verbose", "v", false, "enable debug-level logging")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	value, err := parseScalar(string(raw))
	if err != nil {
		logger.Error("pack failed", "error", err)
		return err
	}

	buf := pkstream.NewBuffer()
	if err := pkstream.NewPacker().Pack(buf, value); err != nil {
		logger.Error("pack failed", "error", err, "value_kind", value.Kind().String())
		return err
	}

	out := buf.Bytes()
	logger.Info("packed value", "value_kind", value.Kind().String(), "bytes", humanize.Bytes(uint64(len(out))))

	if *hexOut {
		fmt.Println(hex.EncodeToString(out))
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runUnpack(logger *slog.Logger, args []string) error {
	flagSet := pflag.NewFlagSet("packctl unpack", pflag.ContinueOnError)
	hexIn := flagSet.Bool("hex", false, "read hex-encoded bytes instead of raw bytes")
	namesPath := flagSet.String("names", "", "path to a JSONC signature-names file for diagnostic display")
	flagSet.BoolP("verbose", "v", false, "enable debug-level logging")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	names := config.Empty()
	if *namesPath != "" {
		loaded, err := config.Load(*namesPath)
		if err != nil {
			return err
		}
		names = loaded
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	if *hexIn {
		decoded, err := hex.DecodeString(string(raw))
		if err != nil {
			return fmt.Errorf("decoding hex input: %w", err)
		}
		raw = decoded
	}

	value, err := pkstream.NewUnpacker(nil).Unpack(pkstream.NewBufferFromBytes(raw))
	if err != nil {
		logger.Error("unpack failed", "error", err, "bytes", humanize.Bytes(uint64(len(raw))))
		return err
	}

	logger.Info("unpacked value", "value_kind", value.Kind().String(), "bytes", humanize.Bytes(uint64(len(raw))))
	fmt.Println(render(value, names))
	return nil
}
