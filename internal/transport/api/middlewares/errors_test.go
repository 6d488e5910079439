package middlewares

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "repository duplicate",
			err: fmt.Errorf("creating customer: %w", fmt.Errorf("[repository/creating customer] %w: %s",
				domain.ErrDuplicateKey, `violates unique constraint "customers_national_id_key"`)),
			want: "duplicate key",
		},
		{
			name: "account not found",
			err:  fmt.Errorf("getting account: %w", domain.ErrAccountNotFound),
			want: "account not found",
		},
		{
			name: "insufficient balance keeps amounts",
			err:  domain.NewInsufficientBalanceError(decimal.NewFromInt(10), decimal.NewFromInt(20)),
			want: "insufficient balance: available 10, requested 20",
		},
		{
			name: "unknown error",
			err:  errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			want: "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := Classify(tt.err)
			assert.Equal(t, tt.want, PublicMessage(tt.err, status))
		})
	}
}
