// Package scramble obfuscates buffers by XORing them with the byte output of a
// generator from this module. None of the generators are cryptographically
// secure: this hides data from casual inspection and nothing more.
package scramble

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fysac/xorrand/registry"
)

const (
	// The data is XORed with keystream blocks of this size. It is a multiple of
	// every native output width, so only the final block truncates an output.
	blockSize = 64

	// Data is summed in little-endian words of this size.
	chunkSize = 4

	// The starting and ending value when calculating and verifying a checksum, respectively.
	initialCrc uint32 = 0xffffffff
)

var ErrInvalidChecksum = errors.New("invalid checksum")

// Header precedes the scrambled data.
//
// Layout: name length (1 byte), generator name, seed (the generator's state
// size), data length (uint32 LE), checksum (uint32 LE).
type Header struct {
	Generator string
	Seed      []byte
	Len       uint32
	// Not a CRC, just a checksum over the plain data.
	Crc uint32
}

func (header *Header) Bytes() []byte {
	b := make([]byte, 0, header.size())
	b = append(b, byte(len(header.Generator)))
	b = append(b, header.Generator...)
	b = append(b, header.Seed...)
	b = binary.LittleEndian.AppendUint32(b, header.Len)
	b = binary.LittleEndian.AppendUint32(b, header.Crc)
	return b
}

func (header *Header) size() int {
	return 1 + len(header.Generator) + len(header.Seed) + 8
}

// Encrypt scrambles data with the generator kind seeded from seed.
func Encrypt(data []byte, kind *registry.Kind, seed []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("data is empty")
	}
	if uint64(len(data)) > 0xffffffff {
		return nil, fmt.Errorf("data is too large (%v bytes)", len(data))
	}
	in, err := kind.New(seed)
	if err != nil {
		return nil, err
	}

	header := Header{
		Generator: kind.Name,
		Seed:      append([]byte(nil), seed...),
		Len:       uint32(len(data)),
		Crc:       calcChecksum(data),
	}
	out := header.Bytes()
	start := len(out)
	out = append(out, make([]byte, len(data))...)
	xorKeystream(out[start:], data, in)
	return out, nil
}

// Decrypt reverses Encrypt. Unless ignoreChecksum is set, data whose checksum
// does not match the header yields ErrInvalidChecksum.
func Decrypt(scrambled []byte, ignoreChecksum bool) (*Header, []byte, error) {
	header, kind, err := parseHeader(scrambled)
	if err != nil {
		return nil, nil, err
	}
	in, err := kind.New(header.Seed)
	if err != nil {
		return nil, nil, err
	}

	data := make([]byte, header.Len)
	xorKeystream(data, scrambled[header.size():], in)

	if !ignoreChecksum && !verifyChecksum(header, data) {
		return nil, nil, ErrInvalidChecksum
	}
	return header, data, nil
}

func parseHeader(b []byte) (*Header, *registry.Kind, error) {
	if len(b) < 1 {
		return nil, nil, errors.New("missing header")
	}
	nameLen := int(b[0])
	if len(b) < 1+nameLen {
		return nil, nil, fmt.Errorf("header is truncated (%v bytes)", len(b))
	}
	kind, err := registry.Lookup(string(b[1 : 1+nameLen]))
	if err != nil {
		return nil, nil, err
	}

	header := &Header{Generator: kind.Name}
	off := 1 + nameLen
	if len(b) < off+kind.StateSize+8 {
		return nil, nil, fmt.Errorf("header is truncated (%v bytes)", len(b))
	}
	header.Seed = append([]byte(nil), b[off:off+kind.StateSize]...)
	off += kind.StateSize
	header.Len = binary.LittleEndian.Uint32(b[off:])
	header.Crc = binary.LittleEndian.Uint32(b[off+4:])
	off += 8

	if int64(header.Len) != int64(len(b)-off) {
		return nil, nil, fmt.Errorf("header length (%v) != length of data (%v)", header.Len, len(b)-off)
	}
	return header, kind, nil
}

func xorKeystream(dst, src []byte, in *registry.Instance) {
	var block [blockSize]byte
	for i := 0; i < len(src); i += blockSize {
		n := min(blockSize, len(src)-i)
		in.FillBytes(block[:n])
		for j := 0; j < n; j++ {
			dst[i+j] = src[i+j] ^ block[j]
		}
	}
}

func verifyChecksum(header *Header, data []byte) bool {
	return header.Crc+sumWords(data) == initialCrc
}

func calcChecksum(data []byte) uint32 {
	return initialCrc - sumWords(data)
}

// sumWords adds up data as little-endian uint32 words, zero padding the last.
func sumWords(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += chunkSize {
		var word [chunkSize]byte
		copy(word[:], data[i:])
		sum += binary.LittleEndian.Uint32(word[:])
	}
	return sum
}
