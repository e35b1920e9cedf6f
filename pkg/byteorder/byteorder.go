// Package byteorder converts 16-, 32- and 64-bit unsigned integers between
// the byte order of the host CPU and a fixed little- or big-endian wire
// order.
//
// The host order is resolved at compile time from GOARCH: on a little-endian
// host the LE pair is the identity and only the BE pair performs a byte swap,
// and on a big-endian host the roles invert. Building for an architecture
// that is neither little- nor big-endian fails at compile time.
//
// Every function is a pure function over the full range of its width: any
// bit pattern is a valid input, there are no error conditions, and
// converting a value to an order and back always restores the original
// value.
package byteorder
