// Package wav reads and writes canonical PCM WAV headers, both the common
// little-endian RIFF container and its big-endian RIFX variant.
package wav

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/byteorder/pkg/pcm"
)

const (
	codecTagPCM       = 1
	codecTagIEEEFloat = 3

	headerSize = 44
)

var (
	ErrBadMagic         = errors.New("not a RIFF/RIFX WAVE stream")
	ErrNoFmtChunk       = errors.New("no 'fmt ' chunk before the 'data' chunk")
	ErrUnsupportedCodec = errors.New("unsupported codec")
)

// Header describes a canonical single-'data'-chunk WAV file. The container
// byte order (RIFF vs RIFX) and the codec tag are implied by Format.
type Header struct {
	Format     pcm.Format
	Channels   uint16
	SampleRate uint32
	DataSize   uint32
}

func (h *Header) BitsPerSample() uint16 {
	return uint16(h.Format.BytesPerSample() * 8)
}

func (h *Header) BlockAlign() uint16 {
	return h.Channels * uint16(h.Format.BytesPerSample())
}

func (h *Header) ByteRate() uint32 {
	return h.SampleRate * uint32(h.BlockAlign())
}

// Duration returns the play time of the data chunk.
func (h *Header) Duration() time.Duration {
	byteRate := h.ByteRate()
	if byteRate == 0 {
		return 0
	}
	return time.Duration(h.DataSize) * time.Second / time.Duration(byteRate)
}

func (h *Header) codecTag() uint16 {
	if h.Format.IsFloat() {
		return codecTagIEEEFloat
	}
	return codecTagPCM
}

// Encode serializes the header as the canonical 44-byte preamble, with all
// multi-byte fields in the container byte order.
func (h *Header) Encode() []byte {
	be := h.Format.IsBigEndian()
	b := make([]byte, headerSize)
	if be {
		copy(b[0:4], "RIFX")
	} else {
		copy(b[0:4], "RIFF")
	}
	put32(be, b[4:8], headerSize-8+h.DataSize)
	copy(b[8:12], "WAVE")

	copy(b[12:16], "fmt ")
	put32(be, b[16:20], 16)
	put16(be, b[20:22], h.codecTag())
	put16(be, b[22:24], h.Channels)
	put32(be, b[24:28], h.SampleRate)
	put32(be, b[28:32], h.ByteRate())
	put16(be, b[32:34], h.BlockAlign())
	put16(be, b[34:36], h.BitsPerSample())

	copy(b[36:40], "data")
	put32(be, b[40:44], h.DataSize)
	return b
}

// WriteHeader writes the encoded header to w.
func WriteHeader(w io.Writer, h *Header) error {
	if _, err := w.Write(h.Encode()); err != nil {
		return fmt.Errorf("unable to write the WAV header: %w", err)
	}
	return nil
}

// ReadHeader parses a WAV preamble from r, leaving r positioned at the
// first byte of the data chunk. Chunks other than 'fmt ' and 'data'
// (LIST, fact, ...) are skipped.
func ReadHeader(r io.Reader) (*Header, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("unable to read the RIFF chunk: %w", err)
	}

	var be bool
	switch string(riff[0:4]) {
	case "RIFF":
		be = false
	case "RIFX":
		be = true
	default:
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, riff[0:4])
	}
	if string(riff[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: form type %q", ErrBadMagic, riff[8:12])
	}

	var fmtChunk []byte
	for {
		var chunkHdr [8]byte
		if _, err := io.ReadFull(r, chunkHdr[:]); err != nil {
			return nil, fmt.Errorf("unable to read a chunk header: %w", err)
		}
		chunkID := string(chunkHdr[0:4])
		chunkSize := dec32(be, chunkHdr[4:8])

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("'fmt ' chunk is too short: %d bytes", chunkSize)
			}
			fmtChunk = make([]byte, chunkSize)
			if _, err := io.ReadFull(r, fmtChunk); err != nil {
				return nil, fmt.Errorf("unable to read the 'fmt ' chunk: %w", err)
			}
		case "data":
			if fmtChunk == nil {
				return nil, ErrNoFmtChunk
			}
			return parseHeader(be, fmtChunk, chunkSize)
		default:
			// chunks are word-aligned, a pad byte follows an odd size
			skip := int64(chunkSize) + int64(chunkSize&1)
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, fmt.Errorf("unable to skip the %q chunk: %w", chunkID, err)
			}
		}
	}
}

func parseHeader(be bool, fmtChunk []byte, dataSize uint32) (*Header, error) {
	codecTag := dec16(be, fmtChunk[0:2])
	channels := dec16(be, fmtChunk[2:4])
	sampleRate := dec32(be, fmtChunk[4:8])
	byteRate := dec32(be, fmtChunk[8:12])
	blockAlign := dec16(be, fmtChunk[12:14])
	bitsPerSample := dec16(be, fmtChunk[14:16])

	h := &Header{
		Channels:   channels,
		SampleRate: sampleRate,
		DataSize:   dataSize,
	}
	switch {
	case codecTag == codecTagPCM && bitsPerSample == 16 && !be:
		h.Format = pcm.FormatS16LE
	case codecTag == codecTagPCM && bitsPerSample == 16 && be:
		h.Format = pcm.FormatS16BE
	case codecTag == codecTagIEEEFloat && bitsPerSample == 32 && !be:
		h.Format = pcm.FormatFloat32LE
	case codecTag == codecTagIEEEFloat && bitsPerSample == 32 && be:
		h.Format = pcm.FormatFloat32BE
	default:
		return nil, fmt.Errorf("%w: codec tag %d with %d bits per sample", ErrUnsupportedCodec, codecTag, bitsPerSample)
	}

	var mErr *multierror.Error
	if channels == 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the channel count is zero"))
	}
	if sampleRate == 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the sample rate is zero"))
	}
	if blockAlign != h.BlockAlign() {
		mErr = multierror.Append(mErr, fmt.Errorf("inconsistent block alignment: got %d, expected %d", blockAlign, h.BlockAlign()))
	}
	if byteRate != h.ByteRate() {
		mErr = multierror.Append(mErr, fmt.Errorf("inconsistent byte rate: got %d, expected %d", byteRate, h.ByteRate()))
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid 'fmt ' chunk: %w", err)
	}
	return h, nil
}
