package main

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"codeberg.org/mutker/guard/internal/check"
	"codeberg.org/mutker/guard/internal/config"
	"codeberg.org/mutker/guard/internal/errors"
	"codeberg.org/mutker/guard/internal/logger"
	"codeberg.org/mutker/guard/internal/translit"
)

type app struct {
	cfg config.Provider
	log logger.Logger
	out io.Writer

	accepted int
	rejected int
}

func newApp(cfg config.Provider, log logger.Logger, out io.Writer) *app {
	return &app{
		cfg: check.Must(check.NotNull(cfg, "cfg")),
		log: check.Must(check.NotNull(log, "log")),
		out: check.Must(check.NotNull(out, "out")),
	}
}

// convert checks a single input and returns its transliteration.
func (a *app) convert(input string) (string, error) {
	if a.cfg.IsTrim() {
		input = strings.TrimSpace(input)
	}

	if _, err := check.NotEmpty(input, "input"); err != nil {
		return "", err
	}

	if _, err := check.InInterval(utf8.RuneCountInString(input), "input length", 0, a.cfg.GetMaxLength()); err != nil {
		return "", err
	}

	output := translit.RuToLat(input)
	if a.cfg.IsUpper() {
		output = strings.ToUpper(output)
	}

	return output, nil
}

// handle converts input and writes the result. Rejected input is logged and
// skipped; only write failures are returned.
func (a *app) handle(input string, line int) error {
	output, err := a.convert(input)
	if err != nil {
		var coded errors.Error
		if errors.As(err, &coded) {
			a.log.WarnWithCode(coded).Int("line", line).Msg("Input rejected")
		}
		a.rejected++

		return nil
	}

	if _, err := io.WriteString(a.out, output+"\n"); err != nil {
		return errors.New().Wrap(errors.ErrWriteOutput, err)
	}
	a.accepted++

	return nil
}

func (a *app) processArgs(ctx context.Context, args []string) error {
	for i, arg := range args {
		if err := ctx.Err(); err != nil {
			return errors.New().Wrap(errors.ErrInvalidOperation, err)
		}
		if err := a.handle(arg, i+1); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) processReader(ctx context.Context, r io.Reader) error {
	reader := bufio.NewReader(r)

	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return errors.New().Wrap(errors.ErrInvalidOperation, err)
		}

		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.New().Wrap(errors.ErrReadInput, err)
		}
		if errors.Is(err, io.EOF) && text == "" {
			return nil
		}

		if herr := a.handle(strings.TrimRight(text, "\r\n"), line); herr != nil {
			return herr
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}
