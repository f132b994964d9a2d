package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/nfcfactory/internal/core/writeform"
	"github.com/example/nfcfactory/internal/ports/primary"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// TagAdapter is a thin adapter that translates CLI operations to TagService calls.
// It depends only on the TagService interface, enabling easy testing with mocks.
type TagAdapter struct {
	service primary.TagService
	out     io.Writer
}

// NewTagAdapter creates a new TagAdapter with the given service.
func NewTagAdapter(service primary.TagService, out io.Writer) *TagAdapter {
	return &TagAdapter{
		service: service,
		out:     out,
	}
}

// WriteSummary describes a run of sequential writes.
type WriteSummary struct {
	Attempted int
	Written   int
	Next      writeform.Form // form state after the last tag
}

// Read reads the next tag and prints its dump.
func (a *TagAdapter) Read(ctx context.Context) (*primary.ReadTagResponse, error) {
	resp, err := a.service.ReadTag(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag: %w", err)
	}

	fmt.Fprint(a.out, resp.View.DisplayText)
	if resp.View.NextActionEnabled {
		fmt.Fprintf(a.out, "%s Equipment ID: %s\n", okMark, color.New(color.Bold).Sprint(resp.Identifier))
	} else {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("No equipment ID on this tag"))
	}

	return resp, nil
}

// Write writes form's identifier to each presented tag in turn, advancing
// the number after every successful write. limit caps the number of tags;
// zero means until no more tags are presented.
func (a *TagAdapter) Write(ctx context.Context, form writeform.Form, limit int) (*WriteSummary, error) {
	summary := &WriteSummary{Next: form}

	for limit <= 0 || summary.Attempted < limit {
		input := summary.Next.Input()
		resp, err := a.service.WriteTag(ctx, primary.WriteTagRequest{Input: input})
		if errors.Is(err, primary.ErrNoTag) {
			break
		}
		if err != nil {
			return summary, fmt.Errorf("failed to write tag: %w", err)
		}

		summary.Attempted++
		if resp.Written {
			summary.Written++
			fmt.Fprintf(a.out, "%s Wrote %s to tag %s (%d bytes)\n", okMark, input, displayTagID(resp.TagID), resp.Bytes)
		} else {
			fmt.Fprintf(a.out, "%s Failed to write %s to tag %s: %s\n", failMark, input, displayTagID(resp.TagID), resp.Reason)
		}
		summary.Next = summary.Next.AfterWrite(resp.Written)
	}

	if summary.Attempted == 0 {
		fmt.Fprintln(a.out, "No tags presented.")
		return summary, nil
	}

	fmt.Fprintf(a.out, "\n%d of %d tag(s) written. Next ID: %s\n", summary.Written, summary.Attempted, summary.Next.Input())
	return summary, nil
}

// WriteNext reads a tag and writes the identifier found on it, stepped by
// step, to the tag presented after it.
func (a *TagAdapter) WriteNext(ctx context.Context, step int64) (*WriteSummary, error) {
	resp, err := a.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.HasIdentifier {
		return nil, fmt.Errorf("tag %s has no equipment ID to continue from", displayTagID(resp.Result.TagID))
	}
	fmt.Fprintln(a.out)

	form, err := a.prefill(ctx, resp.Identifier)
	if err != nil {
		return nil, err
	}
	return a.Write(ctx, form.Step(step), 1)
}

// Scan splits each barcode and prints the prefilled write form.
func (a *TagAdapter) Scan(ctx context.Context, format int, barcodes []string) ([]*primary.ScanBarcodeResponse, error) {
	results := make([]*primary.ScanBarcodeResponse, 0, len(barcodes))

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BARCODE\tPREFIX\tNUMBER\tSUFFIX\tNEXT")
	fmt.Fprintln(w, "-------\t------\t------\t------\t----")

	for _, barcode := range barcodes {
		resp, err := a.service.ScanBarcode(ctx, primary.ScanBarcodeRequest{Format: format, Barcode: barcode})
		if err != nil {
			return results, fmt.Errorf("failed to scan barcode %q: %w", barcode, err)
		}
		results = append(results, resp)

		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			barcode,
			orDash(resp.Identifier.Prefix),
			resp.Identifier.Number,
			orDash(resp.Identifier.Suffix),
			resp.Form.Step(1).Input(),
		)
	}

	w.Flush()
	return results, nil
}

func (a *TagAdapter) prefill(ctx context.Context, id string) (writeform.Form, error) {
	resp, err := a.service.ScanBarcode(ctx, primary.ScanBarcodeRequest{Format: -1, Barcode: id})
	if err != nil {
		return writeform.Form{}, fmt.Errorf("failed to prefill form: %w", err)
	}
	return resp.Form, nil
}

func displayTagID(id string) string {
	if id == "" {
		return "N/A"
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
