package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevision_String(t *testing.T) {
	assert.Equal(t, "1993", VHDL1993.String())
	assert.Equal(t, "2008", VHDL2008.String())
	assert.Equal(t, VHDL1993, DefaultRevision)
}

func TestRevision_UnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Revision
		wantErr bool
	}{
		{"1993", VHDL1993, false},
		{"93", VHDL1993, false},
		{"2008", VHDL2008, false},
		{"08", VHDL2008, false},
		{"2019", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var r Revision
			err := r.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRevision_MarshalText(t *testing.T) {
	text, err := VHDL2008.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2008", string(text))
}
