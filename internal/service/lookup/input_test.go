package lookup

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Shape
	}{
		{"true", ShapeLight},
		{"TRUE", ShapeLight},
		{"True", ShapeLight},
		{"1", ShapeLight},
		{"yes", ShapeLight},
		{"YES", ShapeLight},
		{"", ShapeFull},
		{"false", ShapeFull},
		{"0", ShapeFull},
		{"no", ShapeFull},
		{"on", ShapeFull},
		{"y", ShapeFull},
		{"t", ShapeFull},
		{" true", ShapeFull},
		{"2", ShapeFull},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseLight(tt.raw))
		})
	}
}

func TestParseLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want *int
	}{
		{"", nil},
		{"abc", nil},
		{"-", nil},
		{"+", nil},
		{"a10", nil},
		{"10abc", ptrInt(10)},
		{"1.5", ptrInt(1)},
		{"2e3", ptrInt(2)},
		{"+8", ptrInt(8)},
		{"99999999999999999999", ptrInt(math.MaxInt)},
		{"-99999999999999999999", ptrInt(math.MinInt)},
		{"10", ptrInt(10)},
		{" 7 ", ptrInt(7)},
		{"0", ptrInt(0)},
		{"-5", ptrInt(-5)},
		{"5000", ptrInt(5000)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got := ParseLimit(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestInputs_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, SearchInput{}.Validate())
	assert.NoError(t, SearchInput{Word: "casa"}.Validate())
	assert.NoError(t, SearchInput{Word: " "}.Validate())

	assert.Error(t, PrefixInput{}.Validate())
	assert.NoError(t, PrefixInput{Prefix: "ca"}.Validate())
}
