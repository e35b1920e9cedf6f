//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || ppc64le || riscv64 || wasm

package byteorder

import (
	"encoding/binary"
	"math/bits"
)

// Native is the byte order of the host CPU.
var Native binary.ByteOrder = binary.LittleEndian

// IsBigEndian reports whether the host CPU is big-endian.
const IsBigEndian = false

func HostToLE16(v uint16) uint16 { return v }
func HostToLE32(v uint32) uint32 { return v }
func HostToLE64(v uint64) uint64 { return v }

func LEToHost16(v uint16) uint16 { return v }
func LEToHost32(v uint32) uint32 { return v }
func LEToHost64(v uint64) uint64 { return v }

func HostToBE16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func HostToBE32(v uint32) uint32 { return bits.ReverseBytes32(v) }
func HostToBE64(v uint64) uint64 { return bits.ReverseBytes64(v) }

func BEToHost16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func BEToHost32(v uint32) uint32 { return bits.ReverseBytes32(v) }
func BEToHost64(v uint64) uint64 { return bits.ReverseBytes64(v) }
