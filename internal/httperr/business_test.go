package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("checkout: %w", ErrBusiness("empty_cart"))

	assert.True(t, IsBusiness(err, "empty_cart"))
	assert.False(t, IsBusiness(err, "missing_barber"))
	assert.False(t, IsBusiness(errors.New("empty_cart"), "empty_cart"))

	code, ok := BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "empty_cart", code)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := fmt.Errorf("create account: %w", &pgconn.PgError{Code: "23505"})
	other := &pgconn.PgError{Code: "23503"}

	assert.True(t, IsUniqueViolation(dup))
	assert.False(t, IsUniqueViolation(other))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
