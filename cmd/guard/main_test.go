package main

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"codeberg.org/mutker/guard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGuard(t *testing.T, ctx context.Context, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("GUARD_CONFIG", "")

	var stdout, stderr bytes.Buffer
	code := run(ctx, args, strings.NewReader(stdin), &stdout, &stderr, config.WithConfigDir(t.TempDir()))

	return code, stdout.String(), stderr.String()
}

func TestRunArgs(t *testing.T) {
	code, out, _ := runGuard(t, context.Background(), "", "Привет", "мир")

	require.Equal(t, 0, code)
	assert.Equal(t, "Privet\nmir\n", out)
}

func TestRunStdin(t *testing.T) {
	code, out, _ := runGuard(t, context.Background(), "Щука\r\nёж\nlast", "--upper")

	require.Equal(t, 0, code)
	assert.Equal(t, "SHHUKA\nYOZH\nLAST\n", out)
}

func TestRunRejectsBlankAndLongLines(t *testing.T) {
	input := "  \nкот\nочень длинная строка\n"
	code, out, logs := runGuard(t, context.Background(), input, "--max-length", "5", "--trim", "--log-level", "warning")

	require.Equal(t, 0, code)
	assert.Equal(t, "kot\n", out)
	assert.Contains(t, logs, "Input rejected")
	assert.Contains(t, logs, "invalid_argument")
}

func TestRunInvalidConfig(t *testing.T) {
	code, out, logs := runGuard(t, context.Background(), "", "--log-level", "loud")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, "failed to load config")
}

func TestRunHelp(t *testing.T) {
	code, out, logs := runGuard(t, context.Background(), "", "--help")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, "--max-length")
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, logs := runGuard(t, context.Background(), "", "--loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "unknown flag: --loud")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, out, _ := runGuard(t, ctx, "кот\n")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("closed")
}

func TestRunWriteFailure(t *testing.T) {
	t.Setenv("GUARD_CONFIG", "")

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"кот"}, strings.NewReader(""), failingWriter{}, &stderr,
		config.WithConfigDir(t.TempDir()))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "write_output_failed")
}
