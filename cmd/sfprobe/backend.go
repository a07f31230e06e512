package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/gosfml/csfml/native"
	"github.com/wippyai/gosfml/csfml/soft"
	"github.com/wippyai/gosfml/csfml/wasm"
	"github.com/wippyai/gosfml/runtime"
)

func openBackend(ctx context.Context, opts options, logger *zap.Logger) (runtime.Backend, error) {
	switch opts.backend {
	case "soft":
		return soft.New(&soft.Config{Logger: logger})

	case "native":
		cfg := &native.Config{}
		if opts.config != "" {
			var err error
			if cfg, err = native.LoadConfig(opts.config); err != nil {
				return nil, err
			}
		}
		cfg.Logger = logger
		return native.Open(cfg)

	case "wasm":
		data, err := os.ReadFile(opts.wasmFile)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return wasm.Open(ctx, data, &wasm.Config{Logger: logger, WASI: true, MountDir: "."})

	default:
		return nil, fmt.Errorf("unknown backend %q", opts.backend)
	}
}
