// Package fixtures stores and replays golden wire-format byte corpora
// used by pkstream's regression tests. Each fixture is a named
// []byte — one complete encoded Value — persisted zstd-compressed on
// disk so a growing corpus of golden cases stays cheap to check in.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Corpus is a directory of zstd-compressed golden byte corpora, one
// file per named fixture.
type Corpus struct {
	dir string

	mu      sync.Mutex
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Open returns a Corpus rooted at dir. The directory is created if it
// does not already exist.
func Open(dir string) (*Corpus, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fixtures: creating %s: %w", dir, err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("fixtures: initializing zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("fixtures: initializing zstd decoder: %w", err)
	}

	return &Corpus{dir: dir, encoder: encoder, decoder: decoder}, nil
}

func (c *Corpus) path(name string) string {
	return filepath.Join(c.dir, name+".pks.zst")
}

// Store compresses data and writes it under name, overwriting any
// existing fixture of the same name.
func (c *Corpus) Store(name string, data []byte) error {
	c.mu.Lock()
	compressed := c.encoder.EncodeAll(data, nil)
	c.mu.Unlock()

	if err := os.WriteFile(c.path(name), compressed, 0o644); err != nil {
		return fmt.Errorf("fixtures: writing %s: %w", name, err)
	}
	return nil
}

// Load reads and decompresses the fixture stored under name.
func (c *Corpus) Load(name string) ([]byte, error) {
	compressed, err := os.ReadFile(c.path(name))
	if err != nil {
		return nil, fmt.Errorf("fixtures: reading %s: %w", name, err)
	}

	c.mu.Lock()
	data, err := c.decoder.DecodeAll(compressed, nil)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("fixtures: decompressing %s: %w", name, err)
	}
	return data, nil
}

// Names returns the sorted list of fixture names currently stored.
func (c *Corpus) Names() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures: listing %s: %w", c.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		const suffix = ".pks.zst"
		if len(e.Name()) > len(suffix) && e.Name()[len(e.Name())-len(suffix):] == suffix {
			names = append(names, e.Name()[:len(e.Name())-len(suffix)])
		}
	}
	sort.Strings(names)
	return names, nil
}
