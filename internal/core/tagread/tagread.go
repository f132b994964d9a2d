// Package tagread contains the pure business logic for tags that have been read.
// This is part of the Functional Core - no I/O, only pure functions.
package tagread

import (
	"fmt"
	"strings"

	"github.com/example/nfcfactory/internal/core/payload"
)

// ReadResult is everything read from one tag discovery event.
// It is built once and not modified afterwards.
type ReadResult struct {
	TagID    string // hex device UID, empty when unknown
	Messages []Message
}

// Message is one NDEF message as read from the tag.
type Message struct {
	Records []Record
}

// Record is one NDEF record with its payload decoded as text.
type Record struct {
	MimeType *string // nil for records without a media type
	Payload  string
}

// ViewState is what the read screen displays for a result.
type ViewState struct {
	DisplayText       string
	NextActionEnabled bool
}

// FindFirstValidIdentifier returns the ID of the first record, in message then
// record order, whose payload decodes as a tag payload. Records written by
// other applications are skipped.
func FindFirstValidIdentifier(r ReadResult) (string, bool) {
	for _, msg := range r.Messages {
		for _, rec := range msg.Records {
			if p, ok := payload.Decode(rec.Payload); ok {
				return p.ID, true
			}
		}
	}
	return "", false
}

// DeriveViewState computes the read screen state for r.
// A nil result clears the screen.
func DeriveViewState(r *ReadResult) ViewState {
	if r == nil {
		return ViewState{}
	}
	_, found := FindFirstValidIdentifier(*r)
	return ViewState{
		DisplayText:       Format(*r),
		NextActionEnabled: found,
	}
}

// Format renders a read result as a human-readable dump.
func Format(r ReadResult) string {
	var b strings.Builder

	b.WriteString("Tag ID: ")
	if r.TagID != "" {
		b.WriteString(r.TagID)
	} else {
		b.WriteString("N/A")
	}
	b.WriteString("\n\n")

	for i, msg := range r.Messages {
		fmt.Fprintf(&b, "Message %d of %d: \n", i+1, len(r.Messages))
		b.WriteString("---------------------------------\n")
		for j, rec := range msg.Records {
			fmt.Fprintf(&b, "  Record %d of %d: \n", j+1, len(msg.Records))
			fmt.Fprintf(&b, "  MIME: %s\n", orNull(rec.MimeType))
			fmt.Fprintf(&b, "  Payload: %s\n\n", orNull(&rec.Payload))
		}
	}

	return b.String()
}

func orNull(s *string) string {
	if s == nil || *s == "" {
		return "NULL"
	}
	return *s
}
