package main

import (
	"flag"
	"log"
	"os"

	"chroma-ca/internal/batch"
	"chroma-ca/internal/frameio"
	_ "chroma-ca/internal/sims/chroma"
	_ "chroma-ca/internal/sims/life"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("chroma-ca: ")

	cfg := batch.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var opts []batch.Option
	if cfg.Verbose {
		opts = append(opts, batch.WithLogger(log.New(os.Stderr, "chroma-ca: ", log.Ltime)))
	}

	sink := frameio.NewPNGSink(cfg.Output)
	stats, err := batch.Run(*cfg, sink, opts...)
	if err != nil {
		log.Fatalf("%v (after %d frames)", err, sink.Written())
	}
	log.Printf("wrote %d frames to %s (final population %d)", sink.Written(), cfg.Output, stats.Alive)
}
