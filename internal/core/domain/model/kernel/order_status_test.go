package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

func TestNewOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    kernel.OrderStatus
		wantErr bool
	}{
		{name: "confirmed", raw: "Confirmed", want: kernel.StatusConfirmed},
		{name: "cancelled", raw: "Cancelled", want: kernel.StatusCancelled},
		{name: "returned", raw: "Returned", want: kernel.StatusReturned},
		{name: "shipped", raw: "Shipped", want: kernel.StatusShipped},
		{name: "delivered", raw: "Delivered", want: kernel.StatusDelivered},
		{name: "empty", raw: "", wantErr: true},
		{name: "unknown value", raw: "Pending", wantErr: true},
		{name: "wrong case", raw: "confirmed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := kernel.NewOrderStatus(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.raw, status.String())
		})
	}
}
