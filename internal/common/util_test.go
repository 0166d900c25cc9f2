package common

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestMakeRandHexString(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"salt-sized", 16},
		{"digest-sized", 32},
		{"zero", 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := MakeRandHexString(tc.size)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(s) != tc.size*2 {
				t.Fatalf("expected hex length %d, got %d", tc.size*2, len(s))
			}
			if _, err := hex.DecodeString(s); err != nil {
				t.Fatalf("string is not valid hex: %v", err)
			}
		})
	}
}

func TestMakeRandHexString_FreshEachCall(t *testing.T) {
	a, err := MakeRandHexString(16)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MakeRandHexString(16)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("two salts came out identical: %q", a)
	}
}

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("unexpected lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two random buffers came out identical")
	}
}

func TestWipeByteArray(t *testing.T) {
	password := []byte("hunter2")
	WipeByteArray(password)
	for i, v := range password {
		if v != 0 {
			t.Fatalf("expected password[%d]==0 after wipe, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}
