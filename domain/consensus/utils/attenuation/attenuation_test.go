package attenuation

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeParam(steps []Step) []byte {
	raw := make([]byte, 4+len(steps)*16)
	binary.LittleEndian.PutUint32(raw[:4], uint32(len(steps)))
	for i, s := range steps {
		binary.LittleEndian.PutUint64(raw[4+i*16:4+i*16+8], s.LockHeight)
		binary.LittleEndian.PutUint64(raw[4+i*16+8:4+i*16+16], s.UnlockedQuantity)
	}
	return raw
}

func TestCheckModelParam(t *testing.T) {
	tests := []struct {
		name          string
		steps         []Step
		maximumSupply uint64
		want          bool
	}{
		{
			name:          "single step matches supply",
			steps:         []Step{{LockHeight: 100, UnlockedQuantity: 1000}},
			maximumSupply: 1000,
			want:          true,
		},
		{
			name: "two increasing steps sum to supply",
			steps: []Step{
				{LockHeight: 100, UnlockedQuantity: 400},
				{LockHeight: 200, UnlockedQuantity: 600},
			},
			maximumSupply: 1000,
			want:          true,
		},
		{
			name:          "sum mismatch rejected",
			steps:         []Step{{LockHeight: 100, UnlockedQuantity: 999}},
			maximumSupply: 1000,
			want:          false,
		},
		{
			name: "non-increasing heights rejected",
			steps: []Step{
				{LockHeight: 200, UnlockedQuantity: 500},
				{LockHeight: 100, UnlockedQuantity: 500},
			},
			maximumSupply: 1000,
			want:          false,
		},
		{
			name:          "empty schedule rejected",
			steps:         nil,
			maximumSupply: 1000,
			want:          false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := encodeParam(tt.steps)
			if got := CheckModelParam(raw, tt.maximumSupply); got != tt.want {
				t.Errorf("CheckModelParam() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, ok := Decode([]byte{1, 2})
	assert.False(t, ok, "expected malformed short input to fail decoding")
}

func TestDecodeWellFormed(t *testing.T) {
	raw := encodeParam([]Step{{LockHeight: 100, UnlockedQuantity: 1000}})
	param, ok := Decode(raw)
	assert.True(t, ok, "expected well formed input to decode")
	assert.Equal(t, []Step{{LockHeight: 100, UnlockedQuantity: 1000}}, param.Steps)
}
