package wav

import (
	"fmt"
	"io"

	"github.com/xaionaro-go/datacounter"
)

// Reader parses the header and exposes the data chunk as an io.Reader
// that counts consumed bytes.
type Reader struct {
	Header Header

	rc *datacounter.ReaderCounter
}

// NewReader parses the WAV preamble from r and returns a reader positioned
// at the first sample.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("unable to parse the header: %w", err)
	}
	return &Reader{
		Header: *h,
		rc:     datacounter.NewReaderCounter(io.LimitReader(r, int64(h.DataSize))),
	}, nil
}

// Read reads raw sample bytes from the data chunk.
func (r *Reader) Read(p []byte) (int, error) {
	return r.rc.Read(p)
}

// BytesRead returns how many data-chunk bytes were consumed so far.
func (r *Reader) BytesRead() uint64 {
	return r.rc.Count()
}
