// Package commands contains CLI command implementations for the application.
package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/catalog/internal/app"
)

// stdinPassword tells create-user to read the password from standard input
// instead of taking it from the command line.
const stdinPassword = "-"

// IOTuple bundles the streams a command reads from and writes to so tests can
// substitute buffers.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO wires commands to the process stdin and stdout.
func DefaultIO() IOTuple {
	return IOTuple{Reader: os.Stdin, Writer: os.Stdout}
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("no input available")
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("empty input")
	}
	return line, nil
}

func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
		logger.Error("failed to close migrate",
			slog.Any("source_error", srcErr),
			slog.Any("database_error", dbErr),
		)
	}
}

// writeJSON prints v as indented JSON. Encoding failures go to stderr so the
// writer never receives a partial document.
func writeJSON(w io.Writer, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(w, string(data))
}
