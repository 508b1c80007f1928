package gamearea

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/graphics"
)

// SQLiteArea is a persistent game area stored in a SQLite database
// Queries hit the database on every call, so SegmentAt can fail with I/O errors
type SQLiteArea struct {
	db   *sql.DB
	path string

	mu             sync.RWMutex // guards size
	size           core.Size3D
	layersPerBlock int

	revision atomic.Uint64
	closed   atomic.Bool
}

// OpenSQLite opens or creates an area database at path
// A new database is initialized with size and layersPerBlock; an existing one
// keeps its stored layout and the arguments are ignored
func OpenSQLite(path string, size core.Size3D, layersPerBlock int) (*SQLiteArea, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if !validSize(size) || layersPerBlock < 1 {
		return nil, fmt.Errorf("%w: size %v, %d layers per block", ErrInvalidArea, size, layersPerBlock)
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &SQLiteArea{db: db, path: path}
	if err := a.loadOrInitMeta(size, layersPerBlock); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Printf("Opened game area store %s (%v, %d layers per block)", path, a.size, a.layersPerBlock)
	return a, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS cells (
			z INTEGER NOT NULL,
			y INTEGER NOT NULL,
			x INTEGER NOT NULL,
			layer INTEGER NOT NULL,
			rune INTEGER NOT NULL,
			fg INTEGER NOT NULL,
			bg INTEGER NOT NULL,
			attrs INTEGER NOT NULL,
			PRIMARY KEY (z, y, x, layer)
		) WITHOUT ROWID;`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

var metaKeys = []string{"width", "height", "levels", "layers_per_block"}

func (a *SQLiteArea) loadOrInitMeta(size core.Size3D, layersPerBlock int) error {
	values := make(map[string]int, len(metaKeys))
	rows, err := a.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return fmt.Errorf("read meta: %w", err)
	}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			rows.Close()
			return fmt.Errorf("scan meta: %w", err)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			rows.Close()
			return fmt.Errorf("meta %s: %w", k, err)
		}
		values[k] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read meta: %w", err)
	}

	if len(values) == 0 {
		a.size = size
		a.layersPerBlock = layersPerBlock
		return a.writeMeta()
	}
	for _, k := range metaKeys {
		if _, ok := values[k]; !ok {
			return fmt.Errorf("%w: meta key %q missing", ErrInvalidArea, k)
		}
	}
	a.size = core.Size3D{Width: values["width"], Height: values["height"], Levels: values["levels"]}
	a.layersPerBlock = values["layers_per_block"]
	return nil
}

func (a *SQLiteArea) writeMeta() error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	kv := map[string]int{
		"width":            a.size.Width,
		"height":           a.size.Height,
		"levels":           a.size.Levels,
		"layers_per_block": a.layersPerBlock,
	}
	for _, k := range metaKeys {
		if _, err := tx.Exec(`INSERT INTO meta(key, value) VALUES(?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, strconv.Itoa(kv[k])); err != nil {
			return fmt.Errorf("write meta %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// Path returns the database location
func (a *SQLiteArea) Path() string {
	return a.path
}

// Size returns the stored virtual space extent
func (a *SQLiteArea) Size() core.Size3D {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// LayersPerBlock returns the number of images per segment
func (a *SQLiteArea) LayersPerBlock() int {
	return a.layersPerBlock
}

// Revision returns the mutation counter for this handle
// Writes by other processes are not observed
func (a *SQLiteArea) Revision() uint64 {
	return a.revision.Load()
}

// BlockCount returns the number of positions holding at least one cell
func (a *SQLiteArea) BlockCount() (int, error) {
	if a.closed.Load() {
		return 0, ErrClosed
	}
	var n int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM (SELECT DISTINCT z, y, x FROM cells)`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return n, nil
}

// SetSize resizes the area and deletes cells that fall outside
func (a *SQLiteArea) SetSize(size core.Size3D) error {
	if a.closed.Load() {
		return ErrClosed
	}
	if !validSize(size) {
		return fmt.Errorf("%w: size %v", ErrInvalidArea, size)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.size
	a.size = size
	if err := a.writeMeta(); err != nil {
		a.size = prev
		return err
	}
	if _, err := a.db.Exec(`DELETE FROM cells WHERE x >= ? OR y >= ? OR z >= ?`,
		size.Width, size.Height, size.Levels); err != nil {
		return fmt.Errorf("trim cells: %w", err)
	}
	a.revision.Add(1)
	return nil
}

// SetBlockAt replaces the block at pos; an empty block clears it
func (a *SQLiteArea) SetBlockAt(pos core.Point3D, b Block) error {
	if a.closed.Load() {
		return ErrClosed
	}
	if len(b.Layers) > a.layersPerBlock {
		return fmt.Errorf("%w: block has %d layers, area allows %d", ErrInvalidArea, len(b.Layers), a.layersPerBlock)
	}
	if !inside(a.Size(), pos) {
		return fmt.Errorf("%w: %v in %v", ErrOutOfBounds, pos, a.Size())
	}

	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := writeBlockTx(tx, pos, b); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	a.revision.Add(1)
	return nil
}

func writeBlockTx(tx *sql.Tx, pos core.Point3D, b Block) error {
	if _, err := tx.Exec(`DELETE FROM cells WHERE z = ? AND y = ? AND x = ?`, pos.Z, pos.Y, pos.X); err != nil {
		return fmt.Errorf("clear block %v: %w", pos, err)
	}
	for layer, c := range b.Layers {
		if c.Empty() {
			continue
		}
		if _, err := tx.Exec(`INSERT INTO cells(z, y, x, layer, rune, fg, bg, attrs) VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
			pos.Z, pos.Y, pos.X, layer, int64(c.Rune), int64(c.Fg), int64(c.Bg), int64(c.Attrs)); err != nil {
			return fmt.Errorf("write block %v: %w", pos, err)
		}
	}
	return nil
}

// BlockAt reads the block at pos
func (a *SQLiteArea) BlockAt(pos core.Point3D) (Block, bool, error) {
	if a.closed.Load() {
		return Block{}, false, ErrClosed
	}
	rows, err := a.db.Query(`SELECT layer, rune, fg, bg, attrs FROM cells WHERE z = ? AND y = ? AND x = ? ORDER BY layer`,
		pos.Z, pos.Y, pos.X)
	if err != nil {
		return Block{}, false, fmt.Errorf("query block %v: %w", pos, err)
	}
	defer rows.Close()

	b := Block{Layers: make([]graphics.Cell, a.layersPerBlock)}
	found := false
	for rows.Next() {
		var layer int
		var r, fg, bg, attrs int64
		if err := rows.Scan(&layer, &r, &fg, &bg, &attrs); err != nil {
			return Block{}, false, fmt.Errorf("scan block %v: %w", pos, err)
		}
		if layer >= 0 && layer < len(b.Layers) {
			b.Layers[layer] = cellFromRow(r, fg, bg, attrs)
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return Block{}, false, err
	}
	if !found {
		return Block{}, false, nil
	}
	return b, true, nil
}

// RemoveBlockAt clears pos
func (a *SQLiteArea) RemoveBlockAt(pos core.Point3D) error {
	return a.SetBlockAt(pos, Block{})
}

// Import bulk-copies every block of src inside one transaction
func (a *SQLiteArea) Import(src *MemoryArea) error {
	if a.closed.Load() {
		return ErrClosed
	}
	if src.LayersPerBlock() > a.layersPerBlock {
		return fmt.Errorf("%w: source has %d layers per block, store allows %d",
			ErrInvalidArea, src.LayersPerBlock(), a.layersPerBlock)
	}
	size := a.Size()

	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var werr error
	count := 0
	src.EachBlock(func(pos core.Point3D, b Block) {
		if werr != nil || !inside(size, pos) {
			return
		}
		werr = writeBlockTx(tx, pos, b)
		count++
	})
	if werr != nil {
		return werr
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	a.revision.Add(1)
	log.Printf("Imported %d blocks into %s", count, a.path)
	return nil
}

// SegmentAt renders the window at offset into one image per block layer
func (a *SQLiteArea) SegmentAt(offset core.Point3D, size core.Size) (Segment, error) {
	if a.closed.Load() {
		return Segment{}, ErrClosed
	}
	levels := a.Size().Levels
	if offset.Z < 0 || offset.Z >= levels {
		return Segment{}, fmt.Errorf("%w: level %d of %d", ErrLevelOutOfRange, offset.Z, levels)
	}

	seg := newSegment(a.layersPerBlock, size)
	if size.Empty() {
		return seg, nil
	}

	rows, err := a.db.Query(`SELECT x, y, layer, rune, fg, bg, attrs FROM cells
		WHERE z = ? AND y >= ? AND y < ? AND x >= ? AND x < ?`,
		offset.Z, offset.Y, offset.Y+size.Height, offset.X, offset.X+size.Width)
	if err != nil {
		return Segment{}, fmt.Errorf("query segment %v: %w", offset, err)
	}
	defer rows.Close()

	for rows.Next() {
		var x, y, layer int
		var r, fg, bg, attrs int64
		if err := rows.Scan(&x, &y, &layer, &r, &fg, &bg, &attrs); err != nil {
			return Segment{}, fmt.Errorf("scan segment %v: %w", offset, err)
		}
		c := cellFromRow(r, fg, bg, attrs)
		if layer < 0 || layer >= len(seg.Layers) {
			continue
		}
		seg.Layers[layer].Set(x-offset.X, y-offset.Y, c)
	}
	if err := rows.Err(); err != nil {
		return Segment{}, fmt.Errorf("query segment %v: %w", offset, err)
	}
	return seg, nil
}

// Close releases the database; later calls return ErrClosed
func (a *SQLiteArea) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}
	return a.db.Close()
}

func cellFromRow(r, fg, bg, attrs int64) graphics.Cell {
	return graphics.Cell{
		Rune:  rune(r),
		Fg:    tcell.Color(fg),
		Bg:    tcell.Color(bg),
		Attrs: tcell.AttrMask(attrs),
	}
}
