package fixture

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	CompressionNone = ""
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// CompressedName appends the codec's extension to a fixture file name.
func CompressedName(name, codec string) (string, error) {
	switch codec {
	case CompressionNone:
		return name, nil
	case CompressionGzip:
		return name + ".gz", nil
	case CompressionZstd:
		return name + ".zst", nil
	default:
		return "", fmt.Errorf("unknown compression codec: %q", codec)
	}
}

type sink struct {
	file *os.File
	enc  io.WriteCloser
}

func (s *sink) Write(p []byte) (int, error) {
	if s.enc != nil {
		return s.enc.Write(p)
	}
	return s.file.Write(p)
}

func (s *sink) Close() error {
	var err error
	if s.enc != nil {
		err = s.enc.Close()
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	return err
}

func openSink(path, codec string) (*sink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch codec {
	case CompressionNone:
		return &sink{file: f}, nil
	case CompressionGzip:
		return &sink{file: f, enc: gzip.NewWriter(f)}, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &sink{file: f, enc: zw}, nil
	default:
		f.Close()
		return nil, fmt.Errorf("unknown compression codec: %q", codec)
	}
}
