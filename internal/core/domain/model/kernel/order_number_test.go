package kernel_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

func TestNewOrderNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "valid order number",
			raw:  "ORD-20240101-ABCDEF12",
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "wrong prefix",
			raw:     "ORDER-1",
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "right prefix but too short",
			raw:     "ORD-20240101",
			wantErr: errs.ErrValueIsInvalid,
		},
		{
			name:    "return number prefix",
			raw:     "RET-20240101-ABCDEF12",
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, err := kernel.NewOrderNumber(tt.raw)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, num.Validate())
			assert.Equal(t, tt.raw, num.Value())
		})
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	num := kernel.GenerateOrderNumber(now)

	assert.NoError(t, num.Validate())
	assert.Regexp(t, regexp.MustCompile(`^ORD-20240315-[0-9A-F]{8}$`), num.Value())

	reparsed, err := kernel.NewOrderNumber(num.Value())
	require.NoError(t, err)
	assert.True(t, num.IsEqual(reparsed))
}

func TestGenerateOrderNumberIsRandomized(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	first := kernel.GenerateOrderNumber(now)
	second := kernel.GenerateOrderNumber(now)

	assert.NotEqual(t, first.Value(), second.Value())
}

func TestOrderNumberValidateZeroValue(t *testing.T) {
	var num kernel.OrderNumber

	err := num.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
