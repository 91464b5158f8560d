// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// unwrapper turns a compressed input into the raw WDF byte stream. The
// returned close function releases the unwrapper's resources.
type unwrapper func(r io.Reader) (io.Reader, func(), error)

// inputs maps a file extension, without the dot, to its unwrapper.
type inputs struct {
	mu        sync.Mutex
	unwrappers map[string]unwrapper
}

func newInputs() *inputs {
	in := &inputs{unwrappers: make(map[string]unwrapper)}
	in.register("zst", unwrapZstd)
	return in
}

func (in *inputs) register(ext string, u unwrapper) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.unwrappers[ext] = u
}

func (in *inputs) get(ext string) (unwrapper, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()

	u, ok := in.unwrappers[ext]
	return u, ok
}

// open returns the WDF stream stored at path.
func (in *inputs) open(path string) (io.Reader, func(), error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	u, ok := in.get(strings.TrimPrefix(filepath.Ext(path), "."))
	if !ok {
		return fh, func() { fh.Close() }, nil
	}

	r, closeFn, err := u(fh)
	if err != nil {
		fh.Close()
		return nil, nil, err
	}
	return r, func() {
		closeFn()
		fh.Close()
	}, nil
}

func unwrapZstd(r io.Reader) (io.Reader, func(), error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("opening zstd stream: %w", err)
	}
	return dec, dec.Close, nil
}
