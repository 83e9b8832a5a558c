package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/shell/config"
)

const serviceVersion = "0.1.0"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run wires the desk and drives the menu until the librarian exits or stdin ends.
// It returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "librarydesk: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("librarydesk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config.BindFlags(fs, &cfg)
	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err = cfg.Validate(); err != nil {
		_, _ = fmt.Fprintf(stderr, "librarydesk: %v\n", err)
		return 2
	}

	logger := newLogger(cfg, stderr)

	tel, err := newTelemetry(ctx, cfg, logger)
	if err != nil {
		logger.Error("observability setup failed", "error", err)
		return 1
	}
	defer tel.shutdown(ctx)

	library := core.NewLibrary(cfg.LibraryName, cfg.LibraryAddress)

	d, err := newDesk(library, tel)
	if err != nil {
		logger.Error("desk setup failed", "error", err)
		return 1
	}

	if cfg.SeedCatalog {
		if err = seedCatalog(ctx, d); err != nil {
			logger.Error("seeding the catalog failed", "error", err)
			return 1
		}
		logger.Info("catalog seeded", "books", library.BookCount(), "members", library.MemberCount())
	}

	m := newMenu(d, stdin, stdout, time.Now)
	if err = m.run(ctx); err != nil {
		logger.Error("menu loop stopped", "error", err)
		return 1
	}

	return 0
}
