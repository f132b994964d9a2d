// Package wire provides dependency injection for the nfcfactory application.
// Configuration is loaded once; services are built per invocation around the
// tag files the command was given.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/nfcfactory/internal/adapters/cli"
	"github.com/example/nfcfactory/internal/adapters/filesystem"
	"github.com/example/nfcfactory/internal/app"
	"github.com/example/nfcfactory/internal/config"
	"github.com/example/nfcfactory/internal/core/writeform"
	"github.com/example/nfcfactory/internal/logger"
	"github.com/example/nfcfactory/internal/ports/primary"
)

var (
	cfg    *config.Config
	cfgErr error
	once   sync.Once
)

// Config returns the configuration loaded from the working directory.
func Config() (*config.Config, error) {
	once.Do(loadConfig)
	return cfg, cfgErr
}

// loadConfig is called once via sync.Once.
func loadConfig() {
	dir, err := os.Getwd()
	if err != nil {
		cfgErr = fmt.Errorf("failed to get working directory: %w", err)
		return
	}
	cfg, cfgErr = config.LoadOrDefault(dir)
}

// InitLogging configures the global logger. An empty level falls back to
// the configured log_level.
func InitLogging(level string, debug bool) error {
	c, err := Config()
	if err != nil {
		return err
	}
	if level == "" {
		level = c.LogLevel
	}
	return logger.Init(logger.Config{Level: level, Debug: debug})
}

// TagService returns a TagService reading and writing the given tag files,
// presented in order.
func TagService(paths ...string) (primary.TagService, error) {
	c, err := Config()
	if err != nil {
		return nil, err
	}

	device := filesystem.NewTagFileDevice(logger.WithComponent("tagfile"), paths...)
	messages := writeform.MessageConfig{
		MimeType:   c.MimeType,
		AppPackage: c.AppPackage,
	}
	return app.NewTagService(device, messages, logger.WithComponent("tag-service")), nil
}

// TagAdapter returns a new TagAdapter writing to stdout.
func TagAdapter(paths ...string) (*cliadapter.TagAdapter, error) {
	return TagAdapterWithOutput(os.Stdout, paths...)
}

// TagAdapterWithOutput returns a new TagAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func TagAdapterWithOutput(out io.Writer, paths ...string) (*cliadapter.TagAdapter, error) {
	service, err := TagService(paths...)
	if err != nil {
		return nil, err
	}
	return cliadapter.NewTagAdapter(service, out), nil
}
