package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrEmptyArchive is returned when an archive holds no files to load.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first regular file, compressed streams
// (.gz, .xz, .zst, .lz4, .br) are decompressed, and anything else is
// returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the given file extension. Unknown
// extensions are treated as raw ROM images.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	r := bytes.NewReader(data)

	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		decoder = gz
	case ".xz":
		x, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		decoder = x
	case ".zst":
		z, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer z.Close()
		decoder = z
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".br":
		decoder = brotli.NewReader(r)
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("zip: %w", err)
		}

		// read the first file in the zip file
		for _, f := range zipReader.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("zip: %w", err)
			}
			defer rc.Close()
			decoder = rc
			break
		}
	case ".7z":
		sevenReader, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("7z: %w", err)
		}

		// read the first file in the archive
		for _, f := range sevenReader.File {
			if f.FileInfo().IsDir() {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("7z: %w", err)
			}
			defer rc.Close()
			decoder = rc
			break
		}
	default:
		// return the data as is
		return data, nil
	}

	if decoder == nil {
		return nil, ErrEmptyArchive
	}

	// read the decompressed data into a byte slice
	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", ext, err)
	}

	return out, nil
}
