package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJobPostingOpenOn(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	deadline := func(d time.Time) *time.Time { return &d }

	tests := []struct {
		name string
		job  JobPosting
		want bool
	}{
		{"inactive posting is closed", JobPosting{IsActive: false}, false},
		{"no deadline stays open", JobPosting{IsActive: true}, true},
		{
			"open on the deadline date itself",
			JobPosting{IsActive: true, ApplicationDeadline: deadline(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))},
			true,
		},
		{
			"open when deadline is later the same day",
			JobPosting{IsActive: true, ApplicationDeadline: deadline(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC))},
			true,
		},
		{
			"closed the day after the deadline",
			JobPosting{IsActive: true, ApplicationDeadline: deadline(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC))},
			false,
		},
		{
			"open before the deadline",
			JobPosting{IsActive: true, ApplicationDeadline: deadline(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))},
			true,
		},
		{
			"inactive wins over a future deadline",
			JobPosting{IsActive: false, ApplicationDeadline: deadline(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.job.OpenOn(now))
		})
	}
}

func TestApplicationReference(t *testing.T) {
	app := Application{ID: uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")}
	assert.Equal(t, "APP-A1B2C3D4", app.Reference())
}

func TestValidStatus(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus("submitted"))
}

func TestValidExperienceLevel(t *testing.T) {
	assert.True(t, ValidExperienceLevel(LevelJunior))
	assert.True(t, ValidExperienceLevel(LevelMaster))
	assert.False(t, ValidExperienceLevel("Principal"))
}

func TestValidJobType(t *testing.T) {
	assert.True(t, ValidJobType(JobTypeInternship))
	assert.False(t, ValidJobType("Contract"))
}
