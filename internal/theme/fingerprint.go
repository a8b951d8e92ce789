package theme

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/zeebo/blake3"
)

var errIsDir = errors.New("is a directory")

// FileSystem is the file access needed to fingerprint and combine sources
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem reads from the local disk
type OSFileSystem struct{}

// Stat returns file info for name
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the whole file
func (OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Fingerprinter derives a stable identity from source paths and mtimes
type Fingerprinter struct {
	fs FileSystem
}

// NewFingerprinter creates a fingerprinter. A nil fsys reads from disk.
func NewFingerprinter(fsys FileSystem) *Fingerprinter {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &Fingerprinter{fs: fsys}
}

// ModTimes returns the modification time in unix seconds of every path
func (f *Fingerprinter) ModTimes(paths []string) ([]int64, error) {
	mtimes := make([]int64, 0, len(paths))
	for _, path := range paths {
		info, err := f.fs.Stat(path)
		if err != nil {
			return nil, domain.NewSourceUnavailableError(path, "stat", err)
		}
		if info.IsDir() {
			return nil, domain.NewSourceUnavailableError(path, "stat", errIsDir)
		}
		mtimes = append(mtimes, info.ModTime().Unix())
	}
	return mtimes, nil
}

// Fingerprint hashes the path count, the paths and the mtimes in order.
// The result is lowercase hex.
func (f *Fingerprinter) Fingerprint(paths []string, mtimes []int64) (string, error) {
	if len(paths) == 0 {
		return "", domain.NewEmptySourceSetError("")
	}
	if len(paths) != len(mtimes) {
		return "", fmt.Errorf("fingerprint: %d paths but %d modification times", len(paths), len(mtimes))
	}

	var data strings.Builder
	data.WriteString(strconv.Itoa(len(paths)))
	for _, p := range paths {
		data.WriteString(p)
	}
	for _, m := range mtimes {
		data.WriteString(strconv.FormatInt(m, 10))
	}

	sum := blake3.Sum256([]byte(data.String()))
	return hex.EncodeToString(sum[:]), nil
}

// Compute stats every path and fingerprints the set
func (f *Fingerprinter) Compute(paths []string) (string, []int64, error) {
	if len(paths) == 0 {
		return "", nil, domain.NewEmptySourceSetError("")
	}
	mtimes, err := f.ModTimes(paths)
	if err != nil {
		return "", nil, err
	}
	fp, err := f.Fingerprint(paths, mtimes)
	if err != nil {
		return "", nil, err
	}
	return fp, mtimes, nil
}
