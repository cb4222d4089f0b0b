package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "1.5", ToString(1.5))
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"Float64", 250000000.0, 250000000, false},
		{"Int", 7, 7, false},
		{"String", "100000000", 100000000, false},
		{"PaddedString", " 2.5 ", 2.5, false},
		{"Bytes", []byte("3"), 3, false},
		{"BadString", "lots", 0, true},
		{"Bool", true, 0, true},
		{"Nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToFloat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
