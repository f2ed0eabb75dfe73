package attendance_usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"idguard.io/entities"
)

func TestAbsentMemberIDs(t *testing.T) {
	members := []entities.Member{
		{ID: "m1"}, {ID: "m2"}, {ID: "m3"}, {ID: "m4"},
	}

	tests := []struct {
		name    string
		present []string
		want    []string
	}{
		{name: "nobody present", present: []string{}, want: []string{"m1", "m2", "m3", "m4"}},
		{name: "some present", present: []string{"m2", "m4"}, want: []string{"m1", "m3"}},
		{name: "everyone present", present: []string{"m1", "m2", "m3", "m4"}, want: []string{}},
		{name: "present list includes unknown id", present: []string{"m1", "ghost"}, want: []string{"m2", "m3", "m4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			absent := absentMemberIDs(&members, tt.present)
			if len(tt.want) == 0 {
				assert.Empty(t, absent)
				return
			}
			assert.Equal(t, tt.want, absent)
		})
	}
}

func TestAbsentMemberIDsNilRoster(t *testing.T) {
	absent := absentMemberIDs(nil, []string{"m1"})
	assert.NotNil(t, absent)
	assert.Empty(t, absent)
}

func TestAttendanceMarkerKey(t *testing.T) {
	key := attendanceMarkerKey("pop-1", "2026-03-02", "m1")
	assert.Equal(t, "attendance-pop-1-2026-03-02-m1", key)
}
