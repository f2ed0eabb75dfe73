package validator

import (
	"strings"
	"testing"
)

func TestValidateFrameImage(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "empty payload",
			payload: "",
			wantErr: true,
		},
		{
			name:    "https image URL",
			payload: "https://cdn.example.com/frames/abc.jpg",
			wantErr: false,
		},
		{
			name:    "https URL too long",
			payload: "https://cdn.example.com/" + strings.Repeat("a", 2050),
			wantErr: true,
		},
		{
			name:    "plain http URL is not accepted",
			payload: "http://cdn.example.com/frames/abc.jpg",
			wantErr: true,
		},
		{
			name:    "bare base64",
			payload: strings.Repeat("abcd", 50),
			wantErr: false,
		},
		{
			name:    "bare base64 too short",
			payload: strings.Repeat("abcd", 10),
			wantErr: true,
		},
		{
			name:    "bare payload with non base64 characters",
			payload: strings.Repeat("!!!!", 50),
			wantErr: true,
		},
		{
			name:    "data URL",
			payload: "data:image/jpeg;base64," + strings.Repeat("abcd", 50),
			wantErr: false,
		},
		{
			name:    "data URL without comma",
			payload: "data:image/jpeg;base64" + strings.Repeat("abcd", 50),
			wantErr: true,
		},
		{
			name:    "data URL with short body",
			payload: "data:image/png;base64," + strings.Repeat("abcd", 5),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateField(tt.payload, "frame_image")

			if tt.wantErr && err == nil {
				t.Errorf("validateField() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateField() unexpected error = %v", err)
			}
		})
	}
}
