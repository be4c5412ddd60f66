package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func ptr(s string) *string { return &s }

func TestPatchAppliesOnlySentFields(t *testing.T) {
	got, err := Patch{Name: ptr("  Lê Minh "), Gender: ptr("Nữ")}.Apply(Default())
	require.NoError(t, err)

	assert.Equal(t, "Lê Minh", got.Name)
	assert.Equal(t, "Nữ", got.Gender)
	assert.Equal(t, Default().Phone, got.Phone)
	assert.Equal(t, Default().Email, got.Email)

	got, err = Patch{Phone: ptr("+84888618681"), Email: ptr("minh@mail.vn")}.Apply(Default())
	require.NoError(t, err)
	assert.Equal(t, "+84888618681", got.Phone)
	assert.Equal(t, "minh@mail.vn", got.Email)
}

func TestPatchValidation(t *testing.T) {
	cases := []struct {
		name  string
		patch Patch
		code  string
	}{
		{"blank name", Patch{Name: ptr("  ")}, "invalid_name"},
		{"short phone", Patch{Phone: ptr("1234")}, "invalid_phone"},
		{"phone with letters", Patch{Phone: ptr("09a1234567")}, "invalid_phone"},
		{"bad email", Patch{Email: ptr("hung@")}, "invalid_email"},
		{"unknown gender", Patch{Gender: ptr("male")}, "invalid_gender"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.patch.Apply(Default())
			assert.True(t, httperr.IsBusiness(err, tc.code))
			assert.Equal(t, Default(), got)
		})
	}
}
