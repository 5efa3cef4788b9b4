// core/fasta/open.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicBzip2 = []byte("BZh")
	magicXz    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// sniff wraps br in the decompressor matching its magic number, or
// returns br unchanged for plain input. Detection peeks rather than
// seeks, so pipes and stdin work the same as regular files. The
// returned closer is nil when the decompressor has nothing to close.
func sniff(br *bufio.Reader) (io.Reader, io.Closer, error) {
	magic, err := br.Peek(len(magicXz))
	if err != nil && err != io.EOF {
		return nil, nil, err
	}
	switch {
	case bytes.HasPrefix(magic, magicGzip):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return gr, gr, nil
	case bytes.HasPrefix(magic, magicBzip2):
		return bzip2.NewReader(br), nil, nil
	case bytes.HasPrefix(magic, magicXz):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		return xr, nil, nil
	case bytes.HasPrefix(magic, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		rc := zr.IOReadCloser()
		return rc, rc, nil
	}
	return br, nil, nil
}

// openReader opens path ("-" means stdin) and transparently decompresses
// gzip, bzip2, xz and zstd input, detected by magic number.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		r, _, err := sniff(bufio.NewReader(os.Stdin))
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, dc, err := sniff(bufio.NewReaderSize(fh, 32*1024))
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	closers := []io.Closer{fh}
	if dc != nil {
		closers = []io.Closer{dc, fh}
	}
	return &multiReadCloser{Reader: r, closers: closers}, nil
}
