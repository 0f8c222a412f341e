package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoutineTitle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"Valid", "Push Day", false},
		{"Exactly Max Length", strings.Repeat("a", 50), false},
		{"Empty", "", true},
		{"Too Long", strings.Repeat("a", 51), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoutineTitle(tt.title)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEntryOrders(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		orders  []uint
		wantErr bool
	}{
		{"Valid", []uint{1, 2, 3}, false},
		{"Gaps Allowed", []uint{1, 5, 10}, false},
		{"Unsorted Allowed", []uint{3, 1, 2}, false},
		{"Empty", nil, true},
		{"Zero Order", []uint{0, 1}, true},
		{"Duplicate", []uint{1, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryOrders(tt.orders)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDayIndex(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateDayIndex(0))
	assert.NoError(t, ValidateDayIndex(6))
	assert.Error(t, ValidateDayIndex(7))
}
