//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package byteorder

import (
	"encoding/binary"
	"math/bits"
)

// Native is the byte order of the host CPU.
var Native binary.ByteOrder = binary.BigEndian

// IsBigEndian reports whether the host CPU is big-endian.
const IsBigEndian = true

func HostToLE16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func HostToLE32(v uint32) uint32 { return bits.ReverseBytes32(v) }
func HostToLE64(v uint64) uint64 { return bits.ReverseBytes64(v) }

func LEToHost16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func LEToHost32(v uint32) uint32 { return bits.ReverseBytes32(v) }
func LEToHost64(v uint64) uint64 { return bits.ReverseBytes64(v) }

func HostToBE16(v uint16) uint16 { return v }
func HostToBE32(v uint32) uint32 { return v }
func HostToBE64(v uint64) uint64 { return v }

func BEToHost16(v uint16) uint16 { return v }
func BEToHost32(v uint32) uint32 { return v }
func BEToHost64(v uint64) uint64 { return v }
