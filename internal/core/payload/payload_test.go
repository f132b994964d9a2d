package payload

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "plain id", id: "E1645X", want: `{"v":1,"id":"E1645X"}`},
		{name: "empty id", id: "", want: `{"v":1,"id":""}`},
		{name: "quotes escaped", id: `A"1`, want: `{"v":1,"id":"A\"1"}`},
		{name: "html characters kept", id: "A<1>&", want: `{"v":1,"id":"A<1>&"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.id)
			if err != nil {
				t.Fatalf("Encode(%q) failed: %v", tt.id, err)
			}
			if string(got) != tt.want {
				t.Errorf("Encode(%q) = %s, want %s", tt.id, got, tt.want)
			}
		})
	}
}

func TestEncode_NonASCII(t *testing.T) {
	_, err := Encode("É1645")
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Payload
		ok      bool
	}{
		{name: "current version", payload: `{"v":1,"id":"E1645X"}`, want: Payload{1, "E1645X"}, ok: true},
		{name: "future version accepted", payload: `{"v":7,"id":"A1","extra":true}`, want: Payload{7, "A1"}, ok: true},
		{name: "key order irrelevant", payload: `{"id":"B2","v":1}`, want: Payload{1, "B2"}, ok: true},
		{name: "empty", payload: ""},
		{name: "plain text", payload: "hello world"},
		{name: "url record", payload: "\x04example.com"},
		{name: "missing id", payload: `{"v":1}`},
		{name: "missing version", payload: `{"id":"A1"}`},
		{name: "json null", payload: "null"},
		{name: "json array", payload: `[{"v":1,"id":"A1"}]`},
		{name: "id wrong type", payload: `{"v":1,"id":12}`},
		{name: "version wrong type", payload: `{"v":"1","id":"A1"}`},
		{name: "truncated", payload: `{"v":1,"id":"A`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decode(tt.payload)
			if ok != tt.ok {
				t.Fatalf("Decode(%q) ok = %v, want %v", tt.payload, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.payload, got, tt.want)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	data, err := Encode("ETF164564")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, ok := Decode(string(data))
	if !ok || got.ID != "ETF164564" || got.Version != CurrentVersion {
		t.Errorf("Decode(Encode()) = %+v, %v", got, ok)
	}
}

func FuzzDecode(f *testing.F) {
	for _, seed := range []string{"", "{}", `{"v":1,"id":"x"}`, "\x00\xff", "[", `{"v":1e400,"id":""}`} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		p, ok := Decode(s)
		if !ok && p != (Payload{}) {
			t.Fatalf("Decode(%q) returned %+v without a match", s, p)
		}
	})
}
