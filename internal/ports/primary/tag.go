package primary

import (
	"context"
	"errors"

	"github.com/example/nfcfactory/internal/core/identifier"
	"github.com/example/nfcfactory/internal/core/tagread"
	"github.com/example/nfcfactory/internal/core/writeform"
)

// Errors returned by TagService.
var (
	ErrNoTag      = errors.New("no tag present")
	ErrEmptyInput = errors.New("identifier to write is empty")
)

// TagService defines the primary port for tag operations.
type TagService interface {
	// ReadTag waits for the next tag and reads it.
	ReadTag(ctx context.Context) (*ReadTagResponse, error)

	// WriteTag waits for the next tag and writes an identifier to it.
	// Write failures are reported in the response, not as errors.
	WriteTag(ctx context.Context, req WriteTagRequest) (*WriteTagResponse, error)

	// ScanBarcode turns a decoded barcode into a prefilled write form.
	ScanBarcode(ctx context.Context, req ScanBarcodeRequest) (*ScanBarcodeResponse, error)
}

// ReadTagResponse contains the result of reading a tag.
type ReadTagResponse struct {
	EventID       string
	Result        tagread.ReadResult
	View          tagread.ViewState
	Identifier    string
	HasIdentifier bool
}

// WriteTagRequest contains parameters for writing a tag.
type WriteTagRequest struct {
	Input string
}

// WriteTagResponse contains the result of writing a tag.
type WriteTagResponse struct {
	EventID string
	TagID   string
	Written bool
	Reason  string // why the write failed, empty on success
	Bytes   int    // encoded message size
}

// ScanBarcodeRequest contains a barcode decoded by the capture pipeline.
type ScanBarcodeRequest struct {
	Format  int
	Barcode string
}

// ScanBarcodeResponse contains the split barcode and the form it fills.
type ScanBarcodeResponse struct {
	Identifier identifier.Identifier
	Form       writeform.Form
}
