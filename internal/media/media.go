// Package media uploads product images to an external media host and hands
// back the URL to store on the product record.
package media

import (
	"context"
	"fmt"
	"io"
)

// ProgressFunc receives upload progress as a whole percentage (0..100). It
// is only called when the transfer length is known.
type ProgressFunc func(percent int)

// Uploader sends an image to a media host and returns the publicly
// servable URL. Implementations do not retry; a failed upload must be
// re-issued by the caller.
type Uploader interface {
	// Upload transfers size bytes from r under the given file name. size <= 0
	// means the length is unknown, in which case onProgress never fires.
	Upload(ctx context.Context, name string, r io.Reader, size int64, onProgress ProgressFunc) (string, error)
}

// TransportError is a network-level upload failure. It carries no HTTP
// status because no response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upload transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-200 response from the media host.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("media host returned %d: %s", e.Status, e.Body)
}

// progressReader reports read progress against a known total. Percentages
// are emitted at most once per distinct value.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	fn    ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) io.Reader {
	if fn == nil || total <= 0 {
		return r
	}
	return &progressReader{r: r, total: total, last: -1, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		percent := int(float64(p.read) / float64(p.total) * 100)
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.fn(percent)
		}
	}
	return n, err
}
