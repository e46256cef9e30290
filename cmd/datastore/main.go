// Command datastore opens the document and blob stores described by a config
// file and runs until signalled. Request transports mount the lifecycle
// service; this binary provides the process scaffolding and a clean shutdown
// path that closes the stores in order.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spatialtx/datastore/internal/blobstore"
	"github.com/spatialtx/datastore/internal/config"
	"github.com/spatialtx/datastore/internal/docstore"
	"github.com/spatialtx/datastore/internal/lifecycle"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	fs := flag.NewFlagSet("datastore", flag.ContinueOnError)
	configPath := fs.String("config", "datastore.yml", "path to the config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		return 1
	}
	logger := cfg.Logger("datastore")

	docs, err := docstore.Open(cfg.DocStorePath, docstore.WithLogger(logger))
	if err != nil {
		logger.Error("unable to open document store", "error", err)
		return 1
	}
	defer docs.Close()

	blobs, err := blobstore.Open(cfg.BlobStorePath, blobstore.WithLogger(logger))
	if err != nil {
		logger.Error("unable to open blob store", "error", err)
		return 1
	}
	defer blobs.Close()

	_, err = lifecycle.NewService(docs, blobs,
		lifecycle.WithLogger(logger),
		lifecycle.WithImageBucket(cfg.ImageBucket),
		lifecycle.WithPipelineBucket(cfg.PipelineBucket),
	)
	if err != nil {
		logger.Error("unable to build lifecycle service", "error", err)
		return 1
	}

	logger.Info("datastore ready",
		"doc_store", cfg.DocStorePath,
		"blob_store", cfg.BlobStorePath,
		"image_bucket", cfg.ImageBucket,
		"pipeline_bucket", cfg.PipelineBucket,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())
	return 0
}
