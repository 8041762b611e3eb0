package library

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	cerrors "github.com/FocuswithJustin/chalk/core/errors"
)

// SourceExt is the extension of a chalk page source file.
const SourceExt = ".math"

// CompressedExt is the extension of an xz-compressed page source.
const CompressedExt = ".math.xz"

// ResolvePage maps a page id to its source file under root. The plain
// form wins when both forms exist.
func ResolvePage(root, id string) (string, error) {
	plain := filepath.Join(root, id+SourceExt)
	if _, err := os.Stat(plain); err == nil {
		return plain, nil
	}
	compressed := filepath.Join(root, id+CompressedExt)
	if _, err := os.Stat(compressed); err == nil {
		return compressed, nil
	}
	return "", cerrors.NewNotFound("page", id)
}

// ReadSource reads a page source file, transparently decompressing the
// .math.xz form.
func ReadSource(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, cerrors.NewIO("open", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".xz") {
		xzReader, err := xz.NewReader(file)
		if err != nil {
			return nil, cerrors.NewIO("decompress", path, err)
		}
		reader = xzReader
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, cerrors.NewIO("read", path, err)
	}
	return data, nil
}

// WriteCompressedSource writes page source bytes in the .math.xz form.
func WriteCompressedSource(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return cerrors.NewIO("create", path, err)
	}

	writer, err := xz.NewWriter(file)
	if err != nil {
		file.Close()
		return cerrors.NewIO("compress", path, err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		file.Close()
		return cerrors.NewIO("compress", path, err)
	}
	if err := writer.Close(); err != nil {
		file.Close()
		return cerrors.NewIO("compress", path, err)
	}
	if err := file.Close(); err != nil {
		return cerrors.NewIO("close", path, err)
	}
	return nil
}

// Digest computes the blake3 content digest that keys the parse cache.
func Digest(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}
