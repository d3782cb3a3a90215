package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
)

// compressionCodec defines how to create a streaming reader for a compressed format.
type compressionCodec struct {
	name   string
	opener func(io.Reader) (io.ReadCloser, error)
}

var (
	gzipCodec = compressionCodec{
		name: "gzip",
		opener: func(r io.Reader) (io.ReadCloser, error) {
			zr, err := pgzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			return zr, nil
		},
	}
	zstdCodec = compressionCodec{
		name: "zstd",
		opener: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	}
)

// codecFor picks a codec from the file extension.
func codecFor(path string) (compressionCodec, bool) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return gzipCodec, true
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"):
		return zstdCodec, true
	default:
		return compressionCodec{}, false
	}
}

// decompressedFile closes the decoder before the file underneath it.
type decompressedFile struct {
	io.ReadCloser
	file *os.File
}

func (d *decompressedFile) Close() error {
	err := d.ReadCloser.Close()
	if ferr := d.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// openLog opens path for reading, decompressing by extension.
func openLog(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	codec, ok := codecFor(path)
	if !ok {
		return f, nil
	}

	r, err := codec.opener(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening %s reader for %s: %w", codec.name, path, err)
	}
	return &decompressedFile{ReadCloser: r, file: f}, nil
}
