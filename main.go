package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// ---- flags ----
var (
	configFlag  = flag.String("config", "", "optional YAML config file")
	addrFlag    = flag.String("addr", defaultAddr, "http listen address (e.g. :8080)")
	timeoutFlag = flag.Duration("timeout", defaultTimeout, "timeout for fetching a listing page")
	urlFlag     = flag.String("url", "", "one-shot: folder URL to convert, then exit")
	outFlag     = flag.String("out", "", "one-shot: write playlist to this file instead of stdout")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "addr":
			cfg.Addr = *addrFlag
		case "timeout":
			cfg.Timeout = *timeoutFlag
		}
	})
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	f := NewFetcher(cfg)

	if *urlFlag != "" {
		if err := runOnce(context.Background(), f, *urlFlag, *outFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(f),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("FTP → M3U UI at http://localhost%v", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-done
	log.Println("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = srv.Close()
	}
}

// runOnce converts a single folder and writes the playlist to out, or to
// stdout when out is empty.
func runOnce(ctx context.Context, f *Fetcher, folderURL, out string) error {
	entries, err := FetchFolderLinks(ctx, f, folderURL)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New(msgNoVideos)
	}
	body := BuildM3U(entries)
	if out == "" {
		_, err := fmt.Fprintln(os.Stdout, body)
		return err
	}
	if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
		return errors.Wrap(err, "write playlist")
	}
	log.Printf("[once] wrote %d entries to %s", len(entries), out)
	return nil
}
