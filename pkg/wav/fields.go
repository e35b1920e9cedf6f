package wav

import (
	"github.com/xaionaro-go/byteorder/pkg/byteorder"
)

// The container's multi-byte fields are converted to/from host order
// explicitly; the Native store/load then keeps the bytes as-is.

func put16(be bool, b []byte, v uint16) {
	if be {
		byteorder.Native.PutUint16(b, byteorder.HostToBE16(v))
		return
	}
	byteorder.Native.PutUint16(b, byteorder.HostToLE16(v))
}

func put32(be bool, b []byte, v uint32) {
	if be {
		byteorder.Native.PutUint32(b, byteorder.HostToBE32(v))
		return
	}
	byteorder.Native.PutUint32(b, byteorder.HostToLE32(v))
}

func dec16(be bool, b []byte) uint16 {
	if be {
		return byteorder.BEToHost16(byteorder.Native.Uint16(b))
	}
	return byteorder.LEToHost16(byteorder.Native.Uint16(b))
}

func dec32(be bool, b []byte) uint32 {
	if be {
		return byteorder.BEToHost32(byteorder.Native.Uint32(b))
	}
	return byteorder.LEToHost32(byteorder.Native.Uint32(b))
}
