package pcm

import (
	"fmt"
	"math"

	"github.com/xaionaro-go/byteorder/pkg/byteorder"
)

// AppendS16 appends the wire representation of the samples to dst and
// returns the extended slice.
//
// A sample converted to the wire order and then stored in host order
// lands in the destination exactly in the wire order, so the store
// below is byte-order-agnostic.
func AppendS16(dst []byte, f Format, samples []int16) []byte {
	var b [2]byte
	for _, s := range samples {
		byteorder.Native.PutUint16(b[:], f.wire16(uint16(s)))
		dst = append(dst, b[:]...)
	}
	return dst
}

// DecodeS16 parses the wire representation of int16 samples.
func DecodeS16(f Format, b []byte) ([]int16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("unable to decode s16 samples: odd buffer length %d", len(b))
	}
	samples := make([]int16, len(b)/2)
	for i := range samples {
		samples[i] = int16(f.host16(byteorder.Native.Uint16(b[i*2:])))
	}
	return samples, nil
}

// AppendFloat32 appends the wire representation of the samples to dst and
// returns the extended slice.
func AppendFloat32(dst []byte, f Format, samples []float32) []byte {
	var b [4]byte
	for _, s := range samples {
		byteorder.Native.PutUint32(b[:], f.wire32(math.Float32bits(s)))
		dst = append(dst, b[:]...)
	}
	return dst
}

// DecodeFloat32 parses the wire representation of float32 samples.
func DecodeFloat32(f Format, b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("unable to decode float32 samples: buffer length %d is not a multiple of 4", len(b))
	}
	samples := make([]float32, len(b)/4)
	for i := range samples {
		samples[i] = math.Float32frombits(f.host32(byteorder.Native.Uint32(b[i*4:])))
	}
	return samples, nil
}
