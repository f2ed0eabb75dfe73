package utils

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		payload string
		want    []byte
		wantErr bool
	}{
		{
			name:    "bare base64",
			payload: encoded,
			want:    raw,
		},
		{
			name:    "data URL",
			payload: "data:image/jpeg;base64," + encoded,
			want:    raw,
		},
		{
			name:    "empty payload",
			payload: "",
			wantErr: true,
		},
		{
			name:    "data URL without comma",
			payload: "data:image/jpeg;base64" + encoded,
			wantErr: true,
		},
		{
			name:    "invalid base64",
			payload: "not*base64*at*all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBase64Image(tt.payload)

			if tt.wantErr {
				if err == nil {
					t.Errorf("DecodeBase64Image() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("DecodeBase64Image() unexpected error = %v", err)
				return
			}
			if string(got) != string(tt.want) {
				t.Errorf("DecodeBase64Image() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateULIDString(t *testing.T) {
	first := GenerateULIDString()
	second := GenerateULIDString()

	if len(first) != 26 {
		t.Errorf("GenerateULIDString() length = %d, want 26", len(first))
	}
	if first == second {
		t.Errorf("GenerateULIDString() produced the same id twice: %s", first)
	}
	// the timestamp component keeps the leading character at 0 for
	// every date this service will ever see
	if !strings.HasPrefix(first, "0") {
		t.Errorf("GenerateULIDString() timestamp prefix out of range: %s", first)
	}
}

func TestHasItemString(t *testing.T) {
	items := []string{"m1", "m2", "m3"}

	if !HasItemString(&items, "m2") {
		t.Errorf("HasItemString() = false, want true for present item")
	}
	if HasItemString(&items, "m9") {
		t.Errorf("HasItemString() = true, want false for absent item")
	}

	empty := []string{}
	if HasItemString(&empty, "m1") {
		t.Errorf("HasItemString() = true, want false for empty slice")
	}
}

func TestPointerHelpersReturnIndependentPointers(t *testing.T) {
	a := GetStringPointer("alpha")
	b := GetStringPointer("alpha")

	if a == b {
		t.Error("GetStringPointer() returned the same address for two calls")
	}
	if *a != "alpha" {
		t.Errorf("GetStringPointer() = %q, want %q", *a, "alpha")
	}
}
