package voxel

import (
	"fmt"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// Snapshot encodings. The high bit marks a zstd-compressed payload.
const (
	encDense  = 0
	encSparse = 1

	encCompressed = 0x80
)

// Snapshot is an immutable encoded copy of the full store at one point in
// edit history.
type Snapshot struct {
	At      time.Time
	enc     uint8
	payload []byte
	digest  uint64
}

// Digest identifies the store content; two snapshots of equal stores share
// a digest regardless of which encoding won.
func (s Snapshot) Digest() uint64 { return s.digest }

// encodeDense packs all cells in index order: 4-bit height (0 = empty)
// followed by 24-bit RGB when occupied.
func encodeDense(store *Store) []byte {
	bw := newBitWriter()
	for i := range store.cells {
		c := store.cells[i]
		bw.writeBits(uint64(c.height), 4)
		if c.height != 0 {
			bw.writeBits(packRGB(c.color), 24)
		}
	}
	return bw.bytes()
}

// encodeSparse packs a 16-bit voxel count, then per voxel a 9-bit cell
// index, 4-bit height and 24-bit RGB.
func encodeSparse(store *Store) []byte {
	bw := newBitWriter()
	bw.writeBits(uint64(store.count), 16)
	for i := range store.cells {
		c := store.cells[i]
		if c.height == 0 {
			continue
		}
		bw.writeBits(uint64(i), 9)
		bw.writeBits(uint64(c.height), 4)
		bw.writeBits(packRGB(c.color), 24)
	}
	return bw.bytes()
}

func packRGB(c Color) uint64 {
	return uint64(c.R)<<16 | uint64(c.G)<<8 | uint64(c.B)
}

func unpackRGB(v uint64) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// takeSnapshot encodes the store, trying dense and sparse candidates plus
// their zstd-compressed forms, and keeps the smallest. The digest always
// hashes the canonical dense stream so equal stores compare equal.
func takeSnapshot(store *Store) Snapshot {
	dense := encodeDense(store)
	sparse := encodeSparse(store)

	enc, payload := uint8(encDense), dense
	if len(sparse) < len(payload) {
		enc, payload = encSparse, sparse
	}
	if zw, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault)); err == nil {
		if zb := zw.EncodeAll(payload, nil); len(zb) < len(payload) {
			enc |= encCompressed
			payload = zb
		}
		_ = zw.Close()
	}
	return Snapshot{
		At:      time.Now(),
		enc:     enc,
		payload: payload,
		digest:  xxhash.Sum64(dense),
	}
}

// restore decodes the snapshot into the store, replacing its contents.
func (s Snapshot) restore(store *Store) error {
	payload := s.payload
	if s.enc&encCompressed != 0 {
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return err
		}
		b, err := zr.DecodeAll(payload, nil)
		zr.Close()
		if err != nil {
			return err
		}
		payload = b
	}

	var cells [GridSize * GridSize]cell
	count := 0
	br := newBitReader(payload)
	switch s.enc &^ encCompressed {
	case encDense:
		for i := range cells {
			h, err := br.readBits(4)
			if err != nil {
				return err
			}
			if h == 0 {
				continue
			}
			rgb, err := br.readBits(24)
			if err != nil {
				return err
			}
			cells[i] = cell{height: uint8(h), color: unpackRGB(rgb)}
			count++
		}
	case encSparse:
		n, err := br.readBits(16)
		if err != nil {
			return err
		}
		for k := uint64(0); k < n; k++ {
			i, err := br.readBits(9)
			if err != nil {
				return err
			}
			h, err := br.readBits(4)
			if err != nil {
				return err
			}
			rgb, err := br.readBits(24)
			if err != nil {
				return err
			}
			if i >= GridSize*GridSize {
				return fmt.Errorf("snapshot cell index out of range: %d", i)
			}
			cells[i] = cell{height: uint8(h), color: unpackRGB(rgb)}
			count++
		}
	default:
		return fmt.Errorf("unknown snapshot encoding: %d", s.enc)
	}
	store.cells = cells
	store.count = count
	return nil
}
