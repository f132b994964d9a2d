// Package writeform contains the pure business logic for the tag write form.
// This is part of the Functional Core - no I/O, only pure functions.
package writeform

import (
	"fmt"
	"strconv"

	"github.com/example/nfcfactory/internal/core/identifier"
	"github.com/example/nfcfactory/internal/core/payload"
	"github.com/example/nfcfactory/internal/ndef"
)

// Form holds the three editable fields of the write screen.
// Number is kept as entered so that a half-typed value survives a step.
type Form struct {
	Prefix string
	Number string
	Suffix string
}

// MessageConfig names the record types written to a tag.
type MessageConfig struct {
	MimeType   string
	AppPackage string
}

// FromIdentifier fills the form from a split identifier.
func FromIdentifier(id identifier.Identifier) Form {
	return Form{
		Prefix: id.Prefix,
		Number: strconv.FormatInt(id.Number, 10),
		Suffix: id.Suffix,
	}
}

// FromBarcode fills the form from a scanned barcode. The barcode format code
// is accepted for the capture contract but does not affect the result.
func FromBarcode(format int, barcode string) Form {
	return FromIdentifier(identifier.Split(barcode))
}

// Step adds delta to the number field. A number field that does not parse
// as an integer is left unchanged.
func (f Form) Step(delta int64) Form {
	n, err := strconv.ParseInt(f.Number, 10, 64)
	if err != nil {
		return f
	}
	next := identifier.Increment(identifier.Identifier{Number: n}, delta)
	f.Number = strconv.FormatInt(next.Number, 10)
	return f
}

// AfterWrite returns the form to show once a write attempt has finished:
// advanced by one after a successful write, unchanged otherwise.
func (f Form) AfterWrite(written bool) Form {
	if !written {
		return f
	}
	return f.Step(1)
}

// Input is the identifier that will be written to the next tag.
func (f Form) Input() string {
	return f.Prefix + f.Number + f.Suffix
}

// BuildMessage builds the message written to a tag for id: the payload
// record first, then the application record.
func BuildMessage(id string, cfg MessageConfig) (ndef.Message, error) {
	data, err := payload.Encode(id)
	if err != nil {
		return ndef.Message{}, fmt.Errorf("failed to encode payload: %w", err)
	}

	return ndef.NewMessage(
		ndef.NewMimeRecord(cfg.MimeType, data),
		ndef.NewApplicationRecord(cfg.AppPackage),
	), nil
}
