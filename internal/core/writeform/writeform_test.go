package writeform

import (
	"errors"
	"testing"

	"github.com/example/nfcfactory/internal/core/payload"
	"github.com/example/nfcfactory/internal/ndef"
)

func TestFromBarcode(t *testing.T) {
	tests := []struct {
		name    string
		barcode string
		want    Form
	}{
		{name: "prefix and suffix", barcode: "E164564X", want: Form{"E", "164564", "X"}},
		{name: "no number", barcode: "ETF", want: Form{"ETF", "0", ""}},
		{name: "two digit runs", barcode: "E1645X489", want: Form{"E", "1645", "X489"}},
		{name: "leading zeros", barcode: "A0007", want: Form{"A", "7", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBarcode(-1, tt.barcode)
			if got != tt.want {
				t.Errorf("FromBarcode(%q) = %+v, want %+v", tt.barcode, got, tt.want)
			}
		})
	}
}

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		form  Form
		delta int64
		want  string
	}{
		{name: "increase", form: Form{Number: "41"}, delta: 1, want: "42"},
		{name: "decrease", form: Form{Number: "41"}, delta: -1, want: "40"},
		{name: "to negative", form: Form{Number: "0"}, delta: -1, want: "-1"},
		{name: "signed input", form: Form{Number: "+9"}, delta: 1, want: "10"},
		{name: "unparseable left alone", form: Form{Number: "12a"}, delta: 1, want: "12a"},
		{name: "empty left alone", form: Form{Number: ""}, delta: 1, want: ""},
		{name: "saturates", form: Form{Number: "9223372036854775807"}, delta: 1, want: "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.form.Step(tt.delta)
			if got.Number != tt.want {
				t.Errorf("Step(%d) on %q = %q, want %q", tt.delta, tt.form.Number, got.Number, tt.want)
			}
		})
	}
}

func TestAfterWrite(t *testing.T) {
	f := Form{Prefix: "E", Number: "1645", Suffix: "X"}

	if got := f.AfterWrite(false); got != f {
		t.Errorf("AfterWrite(false) = %+v, want unchanged", got)
	}
	if got := f.AfterWrite(true).Input(); got != "E1646X" {
		t.Errorf("AfterWrite(true).Input() = %q, want E1646X", got)
	}
}

func TestInput(t *testing.T) {
	f := Form{Prefix: "ETF", Number: "00164564", Suffix: "XTG"}
	if got := f.Input(); got != "ETF00164564XTG" {
		t.Errorf("Input() = %q", got)
	}
}

func TestBuildMessage(t *testing.T) {
	cfg := MessageConfig{MimeType: "application/vnd.at-equipcheck+json", AppPackage: "com.example.app"}

	msg, err := BuildMessage("E1645X", cfg)
	if err != nil {
		t.Fatalf("BuildMessage failed: %v", err)
	}
	if len(msg.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(msg.Records))
	}

	first := msg.Records[0]
	if mt, ok := first.MimeType(); !ok || mt != cfg.MimeType {
		t.Errorf("first record mime = %q, %v", mt, ok)
	}
	if p, ok := payload.Decode(string(first.Payload)); !ok || p.ID != "E1645X" || p.Version != 1 {
		t.Errorf("first record payload = %s", first.Payload)
	}

	second := msg.Records[1]
	if second.TNF != ndef.TNFExternal || string(second.Type) != ndef.ApplicationRecordType {
		t.Errorf("second record is not an application record: %+v", second)
	}
	if string(second.Payload) != "com.example.app" {
		t.Errorf("second record payload = %q", second.Payload)
	}
}

func TestBuildMessage_EncodingError(t *testing.T) {
	_, err := BuildMessage("Ñ1", MessageConfig{MimeType: "a/b", AppPackage: "c"})
	if !errors.Is(err, payload.ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}
