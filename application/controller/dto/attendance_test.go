package dto

import (
	"strings"
	"testing"
)

func TestValidateMarkAttendanceDTO(t *testing.T) {
	tests := []struct {
		name    string
		payload MarkAttendanceDTO
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid",
			payload: MarkAttendanceDTO{PopulationID: "pop-1", MemberID: "member-1"},
			wantErr: false,
		},
		{
			name:    "missing member id",
			payload: MarkAttendanceDTO{PopulationID: "pop-1"},
			wantErr: true,
			errMsg:  "MemberID is a required field",
		},
		{
			name:    "missing population id",
			payload: MarkAttendanceDTO{MemberID: "member-1"},
			wantErr: true,
			errMsg:  "PopulationID is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validationMessages(tt.payload)

			if tt.wantErr && got == "" {
				t.Errorf("ValidateStruct() expected error but got none")
				return
			}
			if !tt.wantErr && got != "" {
				t.Errorf("ValidateStruct() unexpected error = %v", got)
				return
			}
			if tt.errMsg != "" && !strings.Contains(got, tt.errMsg) {
				t.Errorf("ValidateStruct() error = %v, want error containing %v", got, tt.errMsg)
			}
		})
	}
}

func TestValidateCloseAttendanceDayDTO(t *testing.T) {
	tests := []struct {
		name    string
		payload CloseAttendanceDayDTO
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid without date",
			payload: CloseAttendanceDayDTO{PopulationID: "pop-1"},
			wantErr: false,
		},
		{
			name:    "valid with date",
			payload: CloseAttendanceDayDTO{PopulationID: "pop-1", Date: "2026-03-02"},
			wantErr: false,
		},
		{
			name:    "date in the wrong layout",
			payload: CloseAttendanceDayDTO{PopulationID: "pop-1", Date: "02-03-2026"},
			wantErr: true,
			errMsg:  "Date must be a date in the format 2006-01-02",
		},
		{
			name:    "date is not a date at all",
			payload: CloseAttendanceDayDTO{PopulationID: "pop-1", Date: "yesterday"},
			wantErr: true,
			errMsg:  "Date must be a date in the format 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validationMessages(tt.payload)

			if tt.wantErr && got == "" {
				t.Errorf("ValidateStruct() expected error but got none")
				return
			}
			if !tt.wantErr && got != "" {
				t.Errorf("ValidateStruct() unexpected error = %v", got)
				return
			}
			if tt.errMsg != "" && !strings.Contains(got, tt.errMsg) {
				t.Errorf("ValidateStruct() error = %v, want error containing %v", got, tt.errMsg)
			}
		})
	}
}
