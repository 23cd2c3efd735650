package sspj

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

// DirSink writes documents into a directory, creating it when needed.
type DirSink struct {
	Dir string
}

func (s DirSink) Put(name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0644)
}

// ZipSink writes documents as entries of a zip archive. Close must be called
// to finish the archive; it does not close the underlying writer.
type ZipSink struct {
	w *zip.Writer
}

// NewZipSink returns a sink writing to zw.
func NewZipSink(zw *zip.Writer) *ZipSink {
	return &ZipSink{w: zw}
}

func (s *ZipSink) Put(name string, data []byte) error {
	f, err := s.w.Create(name)
	if err != nil {
		return errors.Wrapf(err, "adding %s to archive", name)
	}
	_, err = f.Write(data)
	return err
}

// AddDir adds every file under dir, named by its slash-separated path
// relative to dir.
func (s *ZipSink) AddDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		return s.Put(filepath.ToSlash(rel), data)
	})
}

func (s *ZipSink) Close() error {
	return s.w.Close()
}

// MemorySink keeps documents in memory. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.Mutex
	docs  map[string][]byte
	names []string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{docs: make(map[string][]byte)}
}

func (s *MemorySink) Put(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; !ok {
		s.names = append(s.names, name)
	}
	s.docs[name] = append([]byte(nil), data...)
	return nil
}

// Get returns the document stored under name.
func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.docs[name]
	return b, ok
}

// Names returns the stored document names in the order they were first put.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.names...)
}
