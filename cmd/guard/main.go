package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/guard/internal/config"
	"codeberg.org/mutker/guard/internal/errors"
	"codeberg.org/mutker/guard/internal/logger"
	"github.com/spf13/pflag"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...config.Option) int {
	opts = append([]config.Option{config.WithOutput(stderr)}, opts...)
	cfg, err := config.Load(args, opts...)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	level, err := logger.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		fmt.Fprintf(stderr, "failed to init logger: %v\n", err)
		return 1
	}
	logger.InitWithWriter(stderr, level, logger.IsService())
	logger.Debug().
		Str("log_level", cfg.GetLogLevel()).
		Int("max_length", cfg.GetMaxLength()).
		Bool("trim", cfg.IsTrim()).
		Bool("upper", cfg.IsUpper()).
		Msg("Config loaded")

	a := newApp(cfg, logger.Default(), stdout)

	if len(cfg.Args) > 0 {
		err = a.processArgs(ctx, cfg.Args)
	} else {
		err = a.processReader(ctx, stdin)
	}

	if err != nil {
		var coded errors.Error
		if errors.As(err, &coded) {
			logger.ErrorWithCode(coded).Msg("transliteration aborted")
		} else {
			logger.Error().Err(err).Msg("transliteration aborted")
		}
		return 1
	}

	logger.Debug().
		Int("accepted", a.accepted).
		Int("rejected", a.rejected).
		Msg("Done")

	return 0
}
