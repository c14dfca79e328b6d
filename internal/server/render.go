// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"context"
	"fmt"
	"sync"

	"piemarker/internal/marker"
	"piemarker/internal/model"
	"piemarker/internal/piemarker"
	"piemarker/internal/store"
	"piemarker/internal/svg"
)

// defaultViewSize is the pixel size of the map view a marker is first placed in.
const defaultViewSize = 256

// renderEntry is a live marker drawn on its own pane. Icon and marker are
// not safe for concurrent use, every access holds mu.
type renderEntry struct {
	mu     sync.Mutex
	marker *piemarker.Marker
	pane   *marker.Pane
}

type renderCache struct {
	mu      sync.Mutex
	entries map[string]*renderEntry
}

func newRenderCache() *renderCache {
	return &renderCache{entries: make(map[string]*renderEntry)}
}

// entry returns the live marker of id, building it on first use. The
// definition is loaded under the cache lock, so a marker removed by drop is
// never built again.
func (c *renderCache) entry(ctx context.Context, st store.Store, id string) (e *renderEntry, err error) {

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, found := c.entries[id]; found {
		return e, nil
	}

	var def *model.Definition
	if def, err = st.Get(ctx, id); err != nil {
		return nil, err
	}
	var m *piemarker.Marker
	if m, err = def.NewMarker(); err != nil {
		return nil, err
	}
	pane := marker.NewPane(0, def.LatLng(), svg.Size{Width: defaultViewSize, Height: defaultViewSize})
	if err = m.AddTo(pane); err != nil {
		return nil, fmt.Errorf("%s: %w", "failed to place marker", err)
	}

	e = &renderEntry{marker: m, pane: pane}
	c.entries[id] = e
	return e, nil
}

// drop deletes id from st and takes its live marker off its pane.
func (c *renderCache) drop(ctx context.Context, st store.Store, id string) (err error) {

	c.mu.Lock()
	defer c.mu.Unlock()

	if err = st.Delete(ctx, id); err != nil {
		return err
	}
	if e, found := c.entries[id]; found {
		e.mu.Lock()
		e.marker.Remove()
		e.mu.Unlock()
		delete(c.entries, id)
	}
	return nil
}
