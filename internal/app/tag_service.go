package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/nfcfactory/internal/core/identifier"
	"github.com/example/nfcfactory/internal/core/tagread"
	"github.com/example/nfcfactory/internal/core/writeform"
	"github.com/example/nfcfactory/internal/ctxutil"
	"github.com/example/nfcfactory/internal/ndef"
	"github.com/example/nfcfactory/internal/ports/primary"
	"github.com/example/nfcfactory/internal/ports/secondary"
)

// TagServiceImpl implements the TagService interface.
type TagServiceImpl struct {
	device   secondary.TagDevice
	messages writeform.MessageConfig
	log      zerolog.Logger
}

// NewTagService creates a new TagService with injected dependencies.
func NewTagService(device secondary.TagDevice, messages writeform.MessageConfig, log zerolog.Logger) *TagServiceImpl {
	return &TagServiceImpl{
		device:   device,
		messages: messages,
		log:      log,
	}
}

// ReadTag waits for the next tag and reads it.
func (s *TagServiceImpl) ReadTag(ctx context.Context) (*primary.ReadTagResponse, error) {
	ctx, eventID := ctxutil.NewEvent(ctx)

	event, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}

	result := toReadResult(event)
	id, found := tagread.FindFirstValidIdentifier(result)

	s.log.Info().
		Str("event_id", eventID).
		Str("tag_id", result.TagID).
		Int("messages", len(result.Messages)).
		Bool("identified", found).
		Msg("tag read")

	return &primary.ReadTagResponse{
		EventID:       eventID,
		Result:        result,
		View:          tagread.DeriveViewState(&result),
		Identifier:    id,
		HasIdentifier: found,
	}, nil
}

// WriteTag waits for the next tag and writes req.Input to it.
func (s *TagServiceImpl) WriteTag(ctx context.Context, req primary.WriteTagRequest) (*primary.WriteTagResponse, error) {
	if req.Input == "" {
		return nil, primary.ErrEmptyInput
	}

	ctx, eventID := ctxutil.NewEvent(ctx)

	event, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}

	resp := &primary.WriteTagResponse{
		EventID: eventID,
		TagID:   tagread.FormatTagID(event.UID),
	}
	log := s.log.With().
		Str("event_id", eventID).
		Str("tag_id", resp.TagID).
		Str("input", req.Input).
		Logger()

	msg, err := writeform.BuildMessage(req.Input, s.messages)
	if err != nil {
		return s.failed(log, resp, err), nil
	}
	resp.Bytes = msg.ByteLength()

	if err := checkWritable(event, msg); err != nil {
		return s.failed(log, resp, err), nil
	}

	if err := s.device.Write(ctx, event, msg); err != nil {
		return s.failed(log, resp, fmt.Errorf("failed to write tag: %w", err)), nil
	}

	resp.Written = true
	log.Info().Int("bytes", resp.Bytes).Msg("tag written")
	return resp, nil
}

// ScanBarcode turns a decoded barcode into a prefilled write form.
func (s *TagServiceImpl) ScanBarcode(ctx context.Context, req primary.ScanBarcodeRequest) (*primary.ScanBarcodeResponse, error) {
	id := identifier.Split(req.Barcode)

	s.log.Debug().
		Int("format", req.Format).
		Str("barcode", req.Barcode).
		Str("prefix", id.Prefix).
		Int64("number", id.Number).
		Str("suffix", id.Suffix).
		Msg("barcode scanned")

	return &primary.ScanBarcodeResponse{
		Identifier: id,
		Form:       writeform.FromBarcode(req.Format, req.Barcode),
	}, nil
}

// Helper methods

func (s *TagServiceImpl) discover(ctx context.Context) (*secondary.TagEvent, error) {
	event, err := s.device.Discover(ctx)
	if errors.Is(err, secondary.ErrNoTag) {
		return nil, primary.ErrNoTag
	}
	if err != nil {
		return nil, fmt.Errorf("failed to discover tag: %w", err)
	}
	return event, nil
}

func (s *TagServiceImpl) failed(log zerolog.Logger, resp *primary.WriteTagResponse, err error) *primary.WriteTagResponse {
	resp.Written = false
	resp.Reason = err.Error()
	log.Warn().Err(err).Msg("tag write failed")
	return resp
}

// checkWritable mirrors the checks the platform performs before writing.
func checkWritable(event *secondary.TagEvent, msg ndef.Message) error {
	if !event.Writable {
		return secondary.ErrTagNotWritable
	}
	if size := msg.ByteLength(); size > event.MaxSize {
		return fmt.Errorf("%w: %d bytes, capacity %d", secondary.ErrTagCapacity, size, event.MaxSize)
	}
	return nil
}

func toReadResult(event *secondary.TagEvent) tagread.ReadResult {
	result := tagread.ReadResult{
		TagID:    tagread.FormatTagID(event.UID),
		Messages: make([]tagread.Message, 0, len(event.Messages)),
	}
	for _, m := range event.Messages {
		msg := tagread.Message{Records: make([]tagread.Record, 0, len(m.Records))}
		for _, r := range m.Records {
			rec := tagread.Record{Payload: tagread.DecodeText(r.Payload)}
			if mime, ok := r.MimeType(); ok {
				rec.MimeType = &mime
			}
			msg.Records = append(msg.Records, rec)
		}
		result.Messages = append(result.Messages, msg)
	}
	return result
}

// Ensure TagServiceImpl implements the interface.
var _ primary.TagService = (*TagServiceImpl)(nil)
