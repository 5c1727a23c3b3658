package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityValidate(t *testing.T) {
	valid := Activity{
		ID:          "a",
		Description: "Run",
		Duration:    30,
		Timestamp:   time.UnixMilli(100),
		Date:        "Mon Jan 01 2024",
		Time:        "9:00 AM",
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Activity)
	}{
		{"empty description", func(a *Activity) { a.Description = "" }},
		{"zero duration", func(a *Activity) { a.Duration = 0 }},
		{"negative duration", func(a *Activity) { a.Duration = -5 }},
		{"missing timestamp", func(a *Activity) { a.Timestamp = time.Time{} }},
		{"missing date", func(a *Activity) { a.Date = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := valid
			tc.mutate(&a)
			assert.ErrorIs(t, a.Validate(), ErrMalformedActivity)
		})
	}
}
