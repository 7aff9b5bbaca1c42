package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"one byte", []byte{0x01}},
		{"two bytes", []byte{0xff, 0xfe}},
		{"text", []byte("hunter2")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80, 0x3e, 0x3f}},
		{"large", bytes.Repeat([]byte{0xAB}, 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(Encode(tt.data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("round trip = %v, want %v", got, tt.data)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong length", "abc"},
		{"invalid character", "ab*d"},
		{"url alphabet", "-_-_"},
		{"missing padding", "aGk"},
		{"non-canonical padding bits", "aGl="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformedInput", tt.input, err)
			}
		})
	}
}

func TestDecodeSalt_AcceptsAllAlphabets(t *testing.T) {
	// 0xfb 0xff produce '+' and '/' in the standard alphabet.
	salt := []byte{0xfb, 0xff, 0xfe, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c}

	inputs := map[string]string{
		"std":     "+//+AAECAwQFBgcICQoLDA==",
		"raw std": "+//+AAECAwQFBgcICQoLDA",
		"url":     "-__-AAECAwQFBgcICQoLDA==",
		"raw url": "-__-AAECAwQFBgcICQoLDA",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := DecodeSalt(in)
			if err != nil {
				t.Fatalf("DecodeSalt(%q) error = %v", in, err)
			}
			if !bytes.Equal(got, salt) {
				t.Errorf("DecodeSalt(%q) = %x, want %x", in, got, salt)
			}
		})
	}
}

func TestDecodeSalt_Malformed(t *testing.T) {
	_, err := DecodeSalt("not base64 at all!")
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("DecodeSalt error = %v, want ErrMalformedInput", err)
	}
}
