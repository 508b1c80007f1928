package gamearea

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zstd"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// SnapshotVersion is the current on-disk format
const SnapshotVersion = 1

// SnapshotHeader is written as a JSON line ahead of the gob body so files can be
// identified with zstdcat | head -1
type SnapshotHeader struct {
	Version        int         `json:"version"`
	Size           core.Size3D `json:"size"`
	LayersPerBlock int         `json:"layers_per_block"`
	Blocks         int         `json:"blocks"`
}

// SnapshotBlock is a stored block with its position
type SnapshotBlock struct {
	Pos   core.Point3D
	Cells []graphics.Cell
}

// SnapshotV1 is the full persisted area
type SnapshotV1 struct {
	Header SnapshotHeader
	Blocks []SnapshotBlock
}

// TakeSnapshot captures the area in deterministic (z, y, x) order
func TakeSnapshot(a *MemoryArea) SnapshotV1 {
	snap := SnapshotV1{
		Header: SnapshotHeader{
			Version:        SnapshotVersion,
			Size:           a.Size(),
			LayersPerBlock: a.LayersPerBlock(),
		},
	}
	a.EachBlock(func(pos core.Point3D, b Block) {
		snap.Blocks = append(snap.Blocks, SnapshotBlock{
			Pos:   pos,
			Cells: append([]graphics.Cell(nil), b.Layers...),
		})
	})
	sort.Slice(snap.Blocks, func(i, j int) bool {
		pi, pj := snap.Blocks[i].Pos, snap.Blocks[j].Pos
		if pi.Z != pj.Z {
			return pi.Z < pj.Z
		}
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	snap.Header.Blocks = len(snap.Blocks)
	return snap
}

// Restore builds a MemoryArea from a snapshot
func (s SnapshotV1) Restore() (*MemoryArea, error) {
	if s.Header.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: snapshot version %d", ErrInvalidArea, s.Header.Version)
	}
	a, err := NewMemoryArea(s.Header.Size, s.Header.LayersPerBlock)
	if err != nil {
		return nil, err
	}
	for _, b := range s.Blocks {
		if err := a.SetBlockAt(b.Pos, Block{Layers: b.Cells}); err != nil {
			return nil, fmt.Errorf("restore block %v: %w", b.Pos, err)
		}
	}
	return a, nil
}

// WriteSnapshot persists the area as zstd-compressed header line + gob body
func WriteSnapshot(path string, a *MemoryArea) error {
	snap := TakeSnapshot(a)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(enc, 64*1024)
	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		enc.Close()
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("zstd close: %w", err)
	}

	log.Printf("Wrote game area snapshot %s (%v, %d blocks)", path, snap.Header.Size, snap.Header.Blocks)
	return nil
}

// ReadSnapshotHeader decodes only the leading header line
func ReadSnapshotHeader(path string) (SnapshotHeader, error) {
	var h SnapshotHeader
	f, err := os.Open(path)
	if err != nil {
		return h, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return h, err
	}
	defer dec.Close()

	line, err := bufio.NewReader(dec).ReadBytes('\n')
	if err != nil {
		return h, fmt.Errorf("read header: %w", err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("decode header: %w", err)
	}
	return h, nil
}

// ReadSnapshot loads an area written by WriteSnapshot
func ReadSnapshot(path string) (*MemoryArea, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	// Header line is repeated inside the gob body
	if _, err := br.ReadBytes('\n'); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var snap SnapshotV1
	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	a, err := snap.Restore()
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded game area snapshot %s (%v, %d blocks)", path, snap.Header.Size, len(snap.Blocks))
	return a, nil
}
