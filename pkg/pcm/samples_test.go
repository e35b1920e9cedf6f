package pcm

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS16(t *testing.T) {
	samples := []int16{0, 1, -1, 256, -32768, 32767}

	t.Run("LE", func(t *testing.T) {
		b := AppendS16(nil, FormatS16LE, samples)
		require.Len(t, b, len(samples)*2)
		for i, s := range samples {
			assert.Equal(t, uint16(s), binary.LittleEndian.Uint16(b[i*2:]))
		}

		back, err := DecodeS16(FormatS16LE, b)
		require.NoError(t, err)
		assert.Equal(t, samples, back)
	})

	t.Run("BE", func(t *testing.T) {
		b := AppendS16(nil, FormatS16BE, samples)
		require.Len(t, b, len(samples)*2)
		for i, s := range samples {
			assert.Equal(t, uint16(s), binary.BigEndian.Uint16(b[i*2:]))
		}

		back, err := DecodeS16(FormatS16BE, b)
		require.NoError(t, err)
		assert.Equal(t, samples, back)
	})

	t.Run("OddLength", func(t *testing.T) {
		_, err := DecodeS16(FormatS16LE, []byte{1, 2, 3})
		require.Error(t, err)
	})
}

func TestFloat32(t *testing.T) {
	samples := []float32{0, 1, -1, 0.5, float32(math.Pi)}

	t.Run("LE", func(t *testing.T) {
		b := AppendFloat32(nil, FormatFloat32LE, samples)
		require.Len(t, b, len(samples)*4)
		for i, s := range samples {
			assert.Equal(t, math.Float32bits(s), binary.LittleEndian.Uint32(b[i*4:]))
		}

		back, err := DecodeFloat32(FormatFloat32LE, b)
		require.NoError(t, err)
		assert.Equal(t, samples, back)
	})

	t.Run("BE", func(t *testing.T) {
		b := AppendFloat32(nil, FormatFloat32BE, samples)
		require.Len(t, b, len(samples)*4)
		for i, s := range samples {
			assert.Equal(t, math.Float32bits(s), binary.BigEndian.Uint32(b[i*4:]))
		}

		back, err := DecodeFloat32(FormatFloat32BE, b)
		require.NoError(t, err)
		assert.Equal(t, samples, back)
	})

	t.Run("BadLength", func(t *testing.T) {
		_, err := DecodeFloat32(FormatFloat32LE, make([]byte, 6))
		require.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, 2, FormatS16LE.BytesPerSample())
	assert.Equal(t, 2, FormatS16BE.BytesPerSample())
	assert.Equal(t, 4, FormatFloat32LE.BytesPerSample())
	assert.Equal(t, 4, FormatFloat32BE.BytesPerSample())
	assert.Equal(t, 0, FormatUndefined.BytesPerSample())

	assert.False(t, FormatS16LE.IsBigEndian())
	assert.True(t, FormatS16BE.IsBigEndian())
	assert.False(t, FormatS16LE.IsFloat())
	assert.True(t, FormatFloat32BE.IsFloat())

	assert.Equal(t, binary.ByteOrder(binary.LittleEndian), FormatFloat32LE.ByteOrder())
	assert.Equal(t, binary.ByteOrder(binary.BigEndian), FormatS16BE.ByteOrder())

	assert.Equal(t, "s16le", FormatS16LE.String())
	assert.Equal(t, "float32be", FormatFloat32BE.String())
}
