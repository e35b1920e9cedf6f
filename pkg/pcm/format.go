// Package pcm converts PCM sample slices to and from their fixed-byte-order
// wire representation.
package pcm

import (
	"encoding/binary"
	"fmt"

	"github.com/xaionaro-go/byteorder/pkg/byteorder"
)

// Format is a PCM sample encoding: the sample type plus the byte order
// the samples are serialized in.
type Format int

const (
	FormatUndefined = Format(iota)
	FormatS16LE
	FormatS16BE
	FormatFloat32LE
	FormatFloat32BE
)

// BytesPerSample returns the serialized size of one sample.
func (f Format) BytesPerSample() int {
	switch f {
	case FormatS16LE, FormatS16BE:
		return 2
	case FormatFloat32LE, FormatFloat32BE:
		return 4
	}
	return 0
}

// IsBigEndian reports whether the format serializes samples in big-endian
// byte order.
func (f Format) IsBigEndian() bool {
	switch f {
	case FormatS16BE, FormatFloat32BE:
		return true
	}
	return false
}

// ByteOrder returns the format's byte order as an encoding/binary order
// value, for callers that feed binary.Read-style APIs.
func (f Format) ByteOrder() binary.ByteOrder {
	if f.IsBigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsFloat reports whether samples are IEEE 754 floats (as opposed to
// signed integers).
func (f Format) IsFloat() bool {
	switch f {
	case FormatFloat32LE, FormatFloat32BE:
		return true
	}
	return false
}

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "undefined"
	case FormatS16LE:
		return "s16le"
	case FormatS16BE:
		return "s16be"
	case FormatFloat32LE:
		return "float32le"
	case FormatFloat32BE:
		return "float32be"
	}
	return fmt.Sprintf("unexpected_format_%d", int(f))
}

// wire16 converts a host-order sample to the format's byte order.
func (f Format) wire16(v uint16) uint16 {
	if f.IsBigEndian() {
		return byteorder.HostToBE16(v)
	}
	return byteorder.HostToLE16(v)
}

func (f Format) wire32(v uint32) uint32 {
	if f.IsBigEndian() {
		return byteorder.HostToBE32(v)
	}
	return byteorder.HostToLE32(v)
}

// host16 converts a sample from the format's byte order to host order.
func (f Format) host16(v uint16) uint16 {
	if f.IsBigEndian() {
		return byteorder.BEToHost16(v)
	}
	return byteorder.LEToHost16(v)
}

func (f Format) host32(v uint32) uint32 {
	if f.IsBigEndian() {
		return byteorder.BEToHost32(v)
	}
	return byteorder.LEToHost32(v)
}
