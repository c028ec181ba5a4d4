// Command rget generates random strings from modes, composite expressions
// and named definitions.
//
//	rget -m an -l 16 -c 5
//	rget -m "[an(10;nr),'@test.com',n(5;r)]" -c 3 --hash n
//	rget defs add re email "[a(8;s),'@example.com']"
//	rget -m '$email' -o s3://bucket/emails.txt
//	rget set max_length=/ 2
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/rget/pkg/config"
	"github.com/dmitrymomot/rget/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "rget: %v\n", err)
		return 1
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "rget: %v\n", err)
		return 1
	}

	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "rget: %v\n", err)
		return 1
	}
	logger.SetAsDefault(log)

	st, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "rget: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("closing store", logger.Error(err))
		}
	}()

	cmd := newRootCommand(newApp(cfg, log, st, stdout, stderr))
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "rget: %v\n", err)
		return 1
	}
	return 0
}
