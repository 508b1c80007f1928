package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/lixenwraith/gamearea/config"
	"github.com/lixenwraith/gamearea/gamearea"
)

// Generated terrain uses two layers per block: ground and decoration
const terrainLayers = 2

// openArea builds the game area selected by cfg
// Missing snapshot files and empty SQLite stores are seeded with generated terrain
// The returned close function is never nil
func openArea(cfg config.AreaConfig) (gamearea.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreGenerate:
		a, err := gamearea.GenerateTerrain(cfg.Size(), cfg.Seed)
		if err != nil {
			return nil, noop, err
		}
		return a, noop, nil

	case config.StoreSnapshot:
		a, err := gamearea.ReadSnapshot(cfg.Path)
		if err == nil {
			return a, noop, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, noop, err
		}
		log.Printf("Snapshot %s not found, generating", cfg.Path)
		a, err = gamearea.GenerateTerrain(cfg.Size(), cfg.Seed)
		if err != nil {
			return nil, noop, err
		}
		if err := gamearea.WriteSnapshot(cfg.Path, a); err != nil {
			return nil, noop, err
		}
		return a, noop, nil

	case config.StoreSQLite:
		a, err := gamearea.OpenSQLite(cfg.Path, cfg.Size(), terrainLayers)
		if err != nil {
			return nil, noop, err
		}
		n, err := a.BlockCount()
		if err != nil {
			_ = a.Close()
			return nil, noop, err
		}
		if n == 0 {
			src, err := gamearea.GenerateTerrain(a.Size(), cfg.Seed)
			if err != nil {
				_ = a.Close()
				return nil, noop, err
			}
			if err := a.Import(src); err != nil {
				_ = a.Close()
				return nil, noop, err
			}
		}
		return a, a.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown area store %q", config.ErrInvalid, cfg.Store)
	}
}
