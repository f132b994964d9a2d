package tagread

import "testing"

func mime(s string) *string { return &s }

func TestFindFirstValidIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		result ReadResult
		wantID string
		wantOK bool
	}{
		{
			name:   "empty result",
			result: ReadResult{},
		},
		{
			name:   "messages without records",
			result: ReadResult{Messages: []Message{{}, {}}},
		},
		{
			name:   "no decodable record",
			result: ReadResult{Messages: []Message{
				{Records: []Record{{MimeType: mime("text/plain"), Payload: "hello"}, {Payload: "com.other.app"}}},
			}},
		},
		{
			name:   "skips foreign records",
			result: ReadResult{Messages: []Message{
				{Records: []Record{
					{MimeType: mime("text/plain"), Payload: "vintage"},
					{MimeType: mime("application/vnd.at-equipcheck+json"), Payload: `{"v":1,"id":"E1645X"}`},
				}},
			}},
			wantID: "E1645X",
			wantOK: true,
		},
		{
			name:   "earliest record wins within a message",
			result: ReadResult{Messages: []Message{
				{Records: []Record{
					{Payload: `{"v":1,"id":"FIRST"}`},
					{Payload: `{"v":1,"id":"SECOND"}`},
				}},
			}},
			wantID: "FIRST",
			wantOK: true,
		},
		{
			name:   "message order before record order",
			result: ReadResult{Messages: []Message{
				{Records: []Record{{Payload: "nope"}, {Payload: "nope"}, {Payload: "nope"}}},
				{Records: []Record{{Payload: `{"v":2,"id":"LATER"}`}}},
			}},
			wantID: "LATER",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := FindFirstValidIdentifier(tt.result)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("FindFirstValidIdentifier() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	r := ReadResult{
		TagID: "0x04a224",
		Messages: []Message{
			{Records: []Record{
				{MimeType: mime("application/vnd.at-equipcheck+json"), Payload: `{"v":1,"id":"A1"}`},
				{Payload: ""},
			}},
		},
	}

	want := "Tag ID: 0x04a224\n\n" +
		"Message 1 of 1: \n" +
		"---------------------------------\n" +
		"  Record 1 of 2: \n" +
		"  MIME: application/vnd.at-equipcheck+json\n" +
		"  Payload: {\"v\":1,\"id\":\"A1\"}\n\n" +
		"  Record 2 of 2: \n" +
		"  MIME: NULL\n" +
		"  Payload: NULL\n\n"

	if got := Format(r); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_UnknownTagID(t *testing.T) {
	if got := Format(ReadResult{}); got != "Tag ID: N/A\n\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestDeriveViewState(t *testing.T) {
	if got := DeriveViewState(nil); got != (ViewState{}) {
		t.Errorf("DeriveViewState(nil) = %+v, want zero", got)
	}

	foreign := &ReadResult{TagID: "0x01", Messages: []Message{{Records: []Record{{Payload: "x"}}}}}
	got := DeriveViewState(foreign)
	if got.NextActionEnabled {
		t.Error("expected next action disabled for foreign tag")
	}
	if got.DisplayText != Format(*foreign) {
		t.Errorf("DisplayText = %q, want formatted result", got.DisplayText)
	}

	ours := &ReadResult{Messages: []Message{{Records: []Record{{Payload: `{"v":1,"id":"A1"}`}}}}}
	if !DeriveViewState(ours).NextActionEnabled {
		t.Error("expected next action enabled when an identifier is present")
	}
}
