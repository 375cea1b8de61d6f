package library

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder.Close returns nothing, so it can't be an io.ReadCloser on
//its own.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s zstdql) Close() error {
	s.closeql()
	return nil
}

//chains the decompressor's Close with the underlying file's.
type fileReader struct {
	io.Reader
	closers []io.Closer
}

func (f *fileReader) Close() error {
	var first error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open opens a data file for reading, transparently decompressing .gz and
// .zst/.zstd files. Any other extension is read as plain text.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(f)
	switch {
	case strings.HasSuffix(path, ".gz"):
		g, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileReader{Reader: g, closers: []io.Closer{g, f}}, nil
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		z, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &fileReader{Reader: z, closers: []io.Closer{zstdql{z.Close, z}, f}}, nil
	}
	return &fileReader{Reader: buf, closers: []io.Closer{f}}, nil
}
