package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/runtime"
)

type options struct {
	backend  string
	wasmFile string
	config   string
	list     bool
	verbose  bool
}

func main() {
	var (
		opts        options
		interactive = flag.Bool("i", false, "Interactive symbol and resource inspector")
	)
	flag.StringVar(&opts.backend, "backend", "soft", "Backend: soft, native or wasm")
	flag.StringVar(&opts.wasmFile, "wasm", "", "CSFML WebAssembly build (wasm backend)")
	flag.StringVar(&opts.config, "config", "", "YAML loader config (native backend)")
	flag.BoolVar(&opts.list, "list", false, "List resolved and missing symbols and exit")
	flag.BoolVar(&opts.verbose, "v", false, "Log lifecycle events to stderr")
	flag.Parse()

	if opts.backend == "wasm" && opts.wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: sfprobe [-backend soft|native] [-config csfml.yaml] [-list] [-i] [-v]")
		fmt.Fprintln(os.Stderr, "       sfprobe -backend wasm -wasm <csfml.wasm> [-list] [-i]")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(opts options, w io.Writer) error {
	ctx := context.Background()
	logger := newLogger(opts.verbose)
	defer logger.Sync()

	b, err := openBackend(ctx, opts, logger)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", opts.backend, err)
	}
	rt, err := runtime.NewWithConfig(b, &runtime.Config{Logger: logger, StrictClose: true})
	if err != nil {
		b.Close()
		return fmt.Errorf("create runtime: %w", err)
	}

	fmt.Fprintf(w, "Backend: %s\n", opts.backend)
	for _, s := range summarize(rt.API()) {
		fmt.Fprintf(w, "  %-8s %4d resolved, %4d missing\n", s.library, s.resolved, len(s.missing))
	}

	if opts.list {
		for _, s := range summarize(rt.API()) {
			if len(s.missing) == 0 {
				continue
			}
			fmt.Fprintf(w, "\nMissing in %s:\n", s.library)
			for _, name := range s.missing {
				fmt.Fprintf(w, "  - %s\n", name)
			}
		}
		return rt.Close()
	}

	fmt.Fprintf(w, "\nProbing...\n")
	failed := 0
	for _, r := range probe(rt) {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "  fail %-12s %v\n", r.name, r.err)
			continue
		}
		fmt.Fprintf(w, "  ok   %-12s %s\n", r.name, r.detail)
	}

	if err := rt.Close(); err != nil {
		return fmt.Errorf("close runtime: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d probes failed", failed, len(probes))
	}
	return nil
}

type librarySummary struct {
	library  string
	missing  []string
	resolved int
}

// summarize groups the function table by library in load order.
func summarize(api *csfml.API) []librarySummary {
	order := []string{"system", "window", "graphics", "audio"}
	byLib := make(map[string]*librarySummary, len(order))
	for _, lib := range order {
		byLib[lib] = &librarySummary{library: lib}
	}
	for _, sym := range api.Symbols() {
		s := byLib[sym.Library]
		if s == nil {
			continue
		}
		if api.IsMissing(sym.Name) {
			s.missing = append(s.missing, sym.Name)
		} else {
			s.resolved++
		}
	}
	out := make([]librarySummary, 0, len(order))
	for _, lib := range order {
		s := byLib[lib]
		sort.Strings(s.missing)
		out = append(out, *s)
	}
	return out
}

// goSignature renders a field type without package qualifiers.
func goSignature(sym csfml.Symbol) string {
	s := sym.Field.Type().String()
	s = strings.ReplaceAll(s, "csfml.", "")
	return strings.ReplaceAll(s, "ffi.", "")
}
