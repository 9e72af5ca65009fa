// Command seed renders a workbook of generated demo data, for trying the
// report layout without running the server.
package main

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hackgods/care-console/internal/console"
	"github.com/hackgods/care-console/internal/logger"
	"github.com/hackgods/care-console/internal/report"
	"github.com/hackgods/care-console/internal/seed"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_LEVEL"), "console", "seed")
	if err != nil {
		os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	out := os.Getenv("SEED_OUTPUT")
	if out == "" {
		out = "care-demo.xlsx"
	}

	count := 100
	if v := os.Getenv("SEED_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatal("SEED_COUNT must be a non-negative integer", zap.String("value", v))
		}
		count = n
	}

	seedValue := uint64(time.Now().UnixNano())
	if v := os.Getenv("SEED_RANDOM"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			log.Fatal("SEED_RANDOM must be an unsigned integer", zap.String("value", v))
		}
		seedValue = n
	}

	now := time.Now()
	c := console.New()
	seed.Fake(c, count, seedValue, now)
	log.Info("generated demo data", zap.Int("per_kind", count), zap.Uint64("seed", seedValue))

	f, err := os.Create(out)
	if err != nil {
		log.Fatal("create output file", zap.String("path", out), zap.Error(err))
	}

	if err := report.WriteWorkbook(f, c.Snapshot(now)); err != nil {
		_ = f.Close()
		log.Fatal("write workbook", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		log.Fatal("close output file", zap.Error(err))
	}

	log.Info("seed complete", zap.String("path", out))
}
