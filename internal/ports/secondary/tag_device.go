package secondary

import (
	"context"
	"errors"

	"github.com/example/nfcfactory/internal/ndef"
)

// Errors reported by tag devices.
var (
	ErrNoTag          = errors.New("no tag present")
	ErrTagNotWritable = errors.New("tag is not writable")
	ErrTagCapacity    = errors.New("message exceeds tag capacity")
)

// TagEvent is a single tag discovery as reported by the platform NFC stack.
type TagEvent struct {
	Source   string // reader or file the tag was found on
	UID      []byte
	Messages []ndef.Message
	MaxSize  int // NDEF capacity in bytes
	Writable bool
}

// TagDevice defines the secondary port for the platform NFC stack.
// Each Discover call corresponds to one tag being presented to the reader.
type TagDevice interface {
	// Discover waits for the next tag and reads its NDEF messages.
	// Returns ErrNoTag when no further tag will be presented.
	Discover(ctx context.Context) (*TagEvent, error)

	// Write replaces the NDEF content of the tag from event with msg.
	// The write either succeeds completely or leaves the tag unchanged.
	Write(ctx context.Context, event *TagEvent, msg ndef.Message) error
}
