// Package ndef encodes and decodes NFC Data Exchange Format messages.
//
// Only the subset needed to store and size application messages is
// supported: short and normal records, optional record IDs, and every TNF.
// Chunked records are rejected.
package ndef

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Type Name Format values (NFC Forum NDEF 1.0, section 3.2.6).
const (
	TNFEmpty       byte = 0x00
	TNFWellKnown   byte = 0x01
	TNFMedia       byte = 0x02
	TNFAbsoluteURI byte = 0x03
	TNFExternal    byte = 0x04
	TNFUnknown     byte = 0x05
	TNFUnchanged   byte = 0x06
)

const (
	flagMB  byte = 0x80
	flagME  byte = 0x40
	flagCF  byte = 0x20
	flagSR  byte = 0x10
	flagIL  byte = 0x08
	tnfMask byte = 0x07
)

// ApplicationRecordType is the external type Android uses for application
// records: scanning a tag without the app installed opens its store page.
const ApplicationRecordType = "android.com:pkg"

// ErrMalformed is returned when bytes do not form a valid NDEF message.
var ErrMalformed = errors.New("malformed NDEF message")

// Record is a single NDEF record.
type Record struct {
	TNF     byte
	Type    []byte
	ID      []byte
	Payload []byte
}

// Message is an ordered list of records.
type Message struct {
	Records []Record
}

// NewMimeRecord creates a media-type record. The MIME type is normalized to
// lower case and stripped of parameters.
func NewMimeRecord(mimeType string, payload []byte) Record {
	return Record{
		TNF:     TNFMedia,
		Type:    []byte(normalizeMimeType(mimeType)),
		Payload: payload,
	}
}

// NewApplicationRecord creates an Android application record for pkg.
func NewApplicationRecord(pkg string) Record {
	return Record{
		TNF:     TNFExternal,
		Type:    []byte(ApplicationRecordType),
		Payload: []byte(pkg),
	}
}

// MimeType reports the MIME type carried by the record, if it has one.
// Well-known text records report text/plain.
func (r Record) MimeType() (string, bool) {
	switch r.TNF {
	case TNFMedia:
		return normalizeMimeType(string(r.Type)), true
	case TNFWellKnown:
		if string(r.Type) == "T" {
			return "text/plain", true
		}
	}
	return "", false
}

// NewMessage creates a message from records in order.
func NewMessage(records ...Record) Message {
	return Message{Records: records}
}

// ByteLength returns the encoded size of the message.
func (m Message) ByteLength() int {
	if len(m.Records) == 0 {
		return Record{TNF: TNFEmpty}.byteLength()
	}
	n := 0
	for _, r := range m.Records {
		n += r.byteLength()
	}
	return n
}

// MarshalBinary encodes the message. An empty message encodes as a single
// empty record, as written by Android when formatting a tag.
func (m Message) MarshalBinary() ([]byte, error) {
	records := m.Records
	if len(records) == 0 {
		records = []Record{{TNF: TNFEmpty}}
	}

	buf := make([]byte, 0, m.ByteLength())
	for i, r := range records {
		if len(r.Type) > 0xFF {
			return nil, fmt.Errorf("record %d: type too long (%d bytes)", i, len(r.Type))
		}
		if len(r.ID) > 0xFF {
			return nil, fmt.Errorf("record %d: id too long (%d bytes)", i, len(r.ID))
		}
		if uint64(len(r.Payload)) > 0xFFFFFFFF {
			return nil, fmt.Errorf("record %d: payload too long", i)
		}

		header := r.TNF & tnfMask
		if i == 0 {
			header |= flagMB
		}
		if i == len(records)-1 {
			header |= flagME
		}
		if r.short() {
			header |= flagSR
		}
		if len(r.ID) > 0 {
			header |= flagIL
		}

		buf = append(buf, header, byte(len(r.Type)))
		if r.short() {
			buf = append(buf, byte(len(r.Payload)))
		} else {
			buf = binary.BigEndian.AppendUint32(buf, uint32(len(r.Payload)))
		}
		if len(r.ID) > 0 {
			buf = append(buf, byte(len(r.ID)))
		}
		buf = append(buf, r.Type...)
		buf = append(buf, r.ID...)
		buf = append(buf, r.Payload...)
	}

	return buf, nil
}

// Unmarshal decodes a single NDEF message from data. Trailing bytes after
// the record flagged ME are rejected.
func Unmarshal(data []byte) (Message, error) {
	if len(data) == 0 {
		return Message{}, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	var msg Message
	pos := 0
	for {
		start := pos
		if pos+2 > len(data) {
			return Message{}, fmt.Errorf("%w: truncated header at offset %d", ErrMalformed, start)
		}
		header := data[pos]
		typeLen := int(data[pos+1])
		pos += 2

		first := len(msg.Records) == 0
		if first != (header&flagMB != 0) {
			return Message{}, fmt.Errorf("%w: unexpected message-begin flag at offset %d", ErrMalformed, start)
		}
		if header&flagCF != 0 {
			return Message{}, fmt.Errorf("%w: chunked records are not supported", ErrMalformed)
		}

		var payloadLen int
		if header&flagSR != 0 {
			if pos+1 > len(data) {
				return Message{}, fmt.Errorf("%w: truncated payload length at offset %d", ErrMalformed, start)
			}
			payloadLen = int(data[pos])
			pos++
		} else {
			if pos+4 > len(data) {
				return Message{}, fmt.Errorf("%w: truncated payload length at offset %d", ErrMalformed, start)
			}
			payloadLen = int(binary.BigEndian.Uint32(data[pos:]))
			pos += 4
		}

		idLen := 0
		if header&flagIL != 0 {
			if pos+1 > len(data) {
				return Message{}, fmt.Errorf("%w: truncated id length at offset %d", ErrMalformed, start)
			}
			idLen = int(data[pos])
			pos++
		}

		if payloadLen < 0 || typeLen+idLen+payloadLen > len(data)-pos {
			return Message{}, fmt.Errorf("%w: record at offset %d runs past end of input", ErrMalformed, start)
		}

		r := Record{TNF: header & tnfMask}
		r.Type = clone(data[pos : pos+typeLen])
		pos += typeLen
		r.ID = clone(data[pos : pos+idLen])
		pos += idLen
		r.Payload = clone(data[pos : pos+payloadLen])
		pos += payloadLen

		msg.Records = append(msg.Records, r)

		if header&flagME != 0 {
			break
		}
	}

	if pos != len(data) {
		return Message{}, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(data)-pos)
	}

	return msg, nil
}

func (r Record) short() bool {
	return len(r.Payload) < 0x100
}

func (r Record) byteLength() int {
	n := 2 + len(r.Type) + len(r.ID) + len(r.Payload)
	if r.short() {
		n++
	} else {
		n += 4
	}
	if len(r.ID) > 0 {
		n++
	}
	return n
}

func normalizeMimeType(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
