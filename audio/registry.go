// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Decoder turns an encoded audio stream into a fully decoded Buffer.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Registry maps MIME types (e.g., "audio/wav") to decoders. Reference
// payloads arrive with a MIME type attached, so lookups are keyed by it.
// Applications may register their own decoders for additional containers.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(mimeType string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[mimeType] = d
}

func (r *Registry) Get(mimeType string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[mimeType]
	return d, ok
}
