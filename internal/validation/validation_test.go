package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ZipCode string  `json:"zipCode" validate:"omitempty,zip5"`
	Name    string  `json:"name" validate:"required"`
	Radius  float64 `json:"radius" validate:"gt=0"`
}

func TestValidateStructPasses(t *testing.T) {
	v := New()
	assert.Nil(t, ValidateStruct(v, sample{ZipCode: "44111", Name: "x", Radius: 1}))
	assert.Nil(t, ValidateStruct(v, sample{Name: "x", Radius: 1}))
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	v := New()
	errs := ValidateStruct(v, sample{ZipCode: "abc12", Radius: 0})
	require.Len(t, errs, 3)

	fields := map[string]string{}
	for _, e := range errs {
		fields[e.FailedField] = e.Tag
	}
	assert.Equal(t, "zip5", fields["zipCode"])
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "gt", fields["radius"])
}

func TestMessage(t *testing.T) {
	msg := Message([]*ErrorResponse{
		{FailedField: "zipCode", Tag: "zip5"},
		{FailedField: "radius", Tag: "gt"},
	})
	assert.Equal(t, "zipCode must be a 5-digit ZIP code; radius is too small", msg)
}

func TestFiniteTag(t *testing.T) {
	type radius struct {
		Miles float64 `json:"radius" validate:"finite,gt=0"`
	}
	v := New()

	assert.Nil(t, ValidateStruct(v, radius{Miles: 10}))
	for _, bad := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		errs := ValidateStruct(v, radius{Miles: bad})
		require.Len(t, errs, 1)
		assert.Equal(t, "finite", errs[0].Tag)
		assert.Equal(t, "radius must be a finite number", Message(errs))
	}
}
