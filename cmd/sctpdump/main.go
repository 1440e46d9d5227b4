// Sctpdump decodes captured SCTP packets and prints their chunk and
// parameter structure. Each input file holds one packet, either raw
// bytes or a hex dump (-x). Files are decoded concurrently; output is
// printed in argument order.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/sctpwire/sctp"
)

var version = "dev"

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	configPath := flag.String("config", "", "TOML config file")
	hexInput := flag.Bool("x", false, "treat inputs as hex dumps")
	strict := flag.Bool("strict", false, "fail on checksum mismatch")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: sctpdump [flags] file...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			slog.Error("bad config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	if *hexInput {
		cfg.HexInput = true
	}
	if *strict {
		cfg.Strict = true
	}

	files := flag.Args()
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	slog.Debug("starting", "version", version, "files", len(files), "parallelism", cfg.Parallelism)

	type result struct {
		packet *sctp.Packet
		warn   string
		err    error
	}
	results := make([]result, len(files))

	g := &errgroup.Group{}
	g.SetLimit(cfg.Parallelism)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			p, warn, err := dumpFile(path, cfg)
			results[i] = result{packet: p, warn: warn, err: err}
			return nil
		})
	}
	_ = g.Wait() // workers report through results, never an error

	failed := 0
	for i, path := range files {
		res := results[i]
		if res.err != nil {
			slog.Error("decode failed", "file", path, "error", res.err)
			failed++
			continue
		}
		if res.warn != "" {
			slog.Warn(res.warn, "file", path)
		}
		renderPacket(path, res.packet, cfg)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// dumpFile reads and decodes one capture. A checksum mismatch is
// returned as a warning unless the config is strict.
func dumpFile(path string, cfg config) (*sctp.Packet, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	if cfg.HexInput {
		raw, err = decodeHexDump(raw)
		if err != nil {
			return nil, "", err
		}
	}

	p, err := sctp.DecodePacket(raw)
	if err != nil {
		if errors.Is(err, sctp.ErrChecksumMismatch) && !cfg.Strict {
			return p, "checksum mismatch", nil
		}
		return nil, "", err
	}
	return p, "", nil
}

// decodeHexDump strips whitespace and decodes hex text.
func decodeHexDump(raw []byte) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, string(raw))
	return hex.DecodeString(cleaned)
}
