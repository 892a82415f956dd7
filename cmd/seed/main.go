package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/dancestudio/internal/config"
	"github.com/dancestudio/internal/db"
	"github.com/dancestudio/internal/service"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// 演示数据生成器
func main() {
	file := flag.String("file", "", "fixtures YAML file (defaults to the built-in demo content)")
	force := flag.Bool("force", false, "seed collections that already contain records")
	flag.Parse()

	data := defaultFixtures
	if *file != "" {
		raw, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("read fixtures: %v", err)
		}
		data = raw
	}

	f, err := parseFixtures(data)
	if err != nil {
		log.Fatal(err)
	}

	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(db.Options{
		Driver:   cfg.DatabaseDriver,
		Path:     cfg.DatabasePath,
		DSN:      cfg.DatabaseURL,
		LogLevel: cfg.DatabaseLogLevel,
	}); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	counts, err := seed(context.Background(), service.NewServices(db.DB), f, *force)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-16s %d created\n", name, counts[name])
	}
}
