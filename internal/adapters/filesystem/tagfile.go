// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/example/nfcfactory/internal/ndef"
	"github.com/example/nfcfactory/internal/ports/secondary"
)

// tagFile is the on-disk form of an emulated tag.
type tagFile struct {
	UID      string   `yaml:"uid"`
	MaxSize  int      `yaml:"max_size"`
	ReadOnly bool     `yaml:"read_only,omitempty"`
	NDEF     []string `yaml:"ndef,omitempty"` // hex-encoded NDEF messages
}

// TagFileDevice implements secondary.TagDevice over YAML tag files.
// The files are presented in order, one per Discover call, like tags
// tapped against a reader one after another.
type TagFileDevice struct {
	mu    sync.Mutex
	paths []string
	next  int
	log   zerolog.Logger
}

// NewTagFileDevice creates a device that presents the tag files at paths.
func NewTagFileDevice(log zerolog.Logger, paths ...string) *TagFileDevice {
	return &TagFileDevice{
		paths: paths,
		log:   log,
	}
}

// Discover reads the next tag file.
func (d *TagFileDevice) Discover(ctx context.Context) (*secondary.TagEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	if d.next >= len(d.paths) {
		d.mu.Unlock()
		return nil, secondary.ErrNoTag
	}
	path := d.paths[d.next]
	d.next++
	d.mu.Unlock()

	tf, err := loadTagFile(path)
	if err != nil {
		return nil, err
	}

	uid, err := hex.DecodeString(tf.UID)
	if err != nil {
		return nil, fmt.Errorf("invalid uid in %s: %w", path, err)
	}

	event := &secondary.TagEvent{
		Source:   path,
		UID:      uid,
		MaxSize:  tf.MaxSize,
		Writable: !tf.ReadOnly,
	}
	for i, encoded := range tf.NDEF {
		msg, err := decodeMessage(encoded)
		if err != nil {
			// Unreadable NDEF areas are reported by the platform as no message.
			d.log.Warn().Err(err).Str("path", path).Int("message", i).Msg("skipping unreadable NDEF message")
			continue
		}
		event.Messages = append(event.Messages, msg)
	}

	d.log.Debug().Str("path", path).Int("messages", len(event.Messages)).Msg("tag discovered")
	return event, nil
}

// Write replaces the NDEF content of the tag file the event came from.
func (d *TagFileDevice) Write(ctx context.Context, event *secondary.TagEvent, msg ndef.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tf, err := loadTagFile(event.Source)
	if err != nil {
		return err
	}
	if !strings.EqualFold(tf.UID, hex.EncodeToString(event.UID)) {
		return fmt.Errorf("tag in %s was replaced since discovery", event.Source)
	}
	if tf.ReadOnly {
		return secondary.ErrTagNotWritable
	}

	data, err := msg.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	if len(data) > tf.MaxSize {
		return fmt.Errorf("%w: %d bytes, capacity %d", secondary.ErrTagCapacity, len(data), tf.MaxSize)
	}

	tf.NDEF = []string{hex.EncodeToString(data)}
	if err := saveTagFile(event.Source, tf); err != nil {
		return err
	}

	d.log.Debug().Str("path", event.Source).Int("bytes", len(data)).Msg("tag file written")
	return nil
}

// CreateTagFile initialises a blank tag file. It refuses to overwrite an
// existing file.
func CreateTagFile(path, uid string, maxSize int, readOnly bool) error {
	if _, err := hex.DecodeString(uid); err != nil || uid == "" {
		return fmt.Errorf("uid must be a non-empty hex string: %q", uid)
	}
	if maxSize <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", maxSize)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("tag file already exists: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check tag file: %w", err)
	}

	return saveTagFile(path, &tagFile{
		UID:      strings.ToLower(uid),
		MaxSize:  maxSize,
		ReadOnly: readOnly,
	})
}

func loadTagFile(path string) (*tagFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag file: %w", err)
	}

	var tf tagFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse tag file %s: %w", path, err)
	}
	return &tf, nil
}

// saveTagFile writes through a temp file so a failed write leaves the
// previous content intact.
func saveTagFile(path string, tf *tagFile) error {
	data, err := yaml.Marshal(tf)
	if err != nil {
		return fmt.Errorf("failed to marshal tag file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tag-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tag file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write tag file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace tag file: %w", err)
	}
	return nil
}

func decodeMessage(encoded string) (ndef.Message, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(encoded), ""))
	if err != nil {
		return ndef.Message{}, fmt.Errorf("invalid hex: %w", err)
	}
	return ndef.Unmarshal(data)
}

// Ensure TagFileDevice implements the interface
var _ secondary.TagDevice = (*TagFileDevice)(nil)
