package format

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrMalformed marks a command whose text could not be parsed.
	ErrMalformed = errors.New("malformed command")
	// ErrInvalid marks an encoded command that failed structural validation.
	ErrInvalid = errors.New("invalid payload")
)

// Detection decides whether a decoder handles a command string. Higher
// priorities are tried first.
type Detection struct {
	Priority int
	Match    func(raw string) bool
}

// Output is what a decoder recovered from one command string.
type Output struct {
	Pulses    []int
	Repeat    int
	ByteCount int
}

// Decoder turns a command string into pulses once selected.
type Decoder interface {
	Name() string
	Decode(context.Context, string) (Output, error)
}

var (
	regMu    sync.RWMutex
	registry []registeredDecoder
)

type registeredDecoder struct {
	detect  Detection
	decoder Decoder
}

// Register stores a detection/decoder pair in memory.
func Register(det Detection, dec Decoder) {
	regMu.Lock()
	defer regMu.Unlock()
	registry = append(registry, registeredDecoder{detect: det, decoder: dec})
	sort.SliceStable(registry, func(i, j int) bool {
		return registry[i].detect.Priority > registry[j].detect.Priority
	})
}

// Lookup returns the highest priority decoder that matches raw.
func Lookup(raw string) (Decoder, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	for _, rd := range registry {
		if rd.detect.Match == nil || rd.detect.Match(raw) {
			return rd.decoder, nil
		}
	}
	return nil, fmt.Errorf("no decoder registered for command %q", raw)
}

// Names lists registered decoders in lookup order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for _, rd := range registry {
		names = append(names, rd.decoder.Name())
	}
	return names
}
