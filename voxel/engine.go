package voxel

// Engine owns one editing session: a store plus its history. Mutations run
// to completion before the next event; callers that hand a rendered scene
// across an asynchronous boundary must capture it synchronously, since the
// store may change before the async step resolves.
type Engine struct {
	store   *Store
	history *History
}

// NewEngine returns an engine with an empty grid and empty history.
func NewEngine() *Engine {
	return &Engine{store: NewStore(), history: NewHistory()}
}

// UpsertVoxel paints or repaints the cell at (x,y). The color is the raw
// #RRGGBB string form received from the input collaborator. On success the
// new state is snapshotted into history.
func (e *Engine) UpsertVoxel(x, y, height int, color string) error {
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	if err := e.store.Upsert(x, y, height, c); err != nil {
		return err
	}
	e.history.Save(e.store)
	return nil
}

// RemoveVoxel erases the cell at (x,y), if painted.
func (e *Engine) RemoveVoxel(x, y int) {
	e.store.Remove(x, y)
	e.history.Save(e.store)
}

// Clear empties the grid.
func (e *Engine) Clear() {
	e.store.Clear()
	e.history.Save(e.store)
}

// Undo restores the previous snapshot; safe no-op when unavailable.
func (e *Engine) Undo() { e.history.Undo(e.store) }

// Redo reapplies an undone snapshot; safe no-op when unavailable.
func (e *Engine) Redo() { e.history.Redo(e.store) }

func (e *Engine) CanUndo() bool { return e.history.CanUndo() }
func (e *Engine) CanRedo() bool { return e.history.CanRedo() }

func (e *Engine) HasVoxel(x, y int) bool          { return e.store.Has(x, y) }
func (e *Engine) GetVoxel(x, y int) (Voxel, bool) { return e.store.Get(x, y) }

// RenderScene composes the current grid under the given lighting angle in
// degrees. Pure read; the scene is owned by the caller.
func (e *Engine) RenderScene(lightingAngle float64) Scene {
	return Compose(e.store, lightingAngle)
}

// Store exposes the underlying grid for read-only consumers such as the
// mesh exporter. External writers are not permitted.
func (e *Engine) Store() *Store { return e.store }
