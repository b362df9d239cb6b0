package voxel

// MaxSnapshots caps the undo history; the oldest snapshot is evicted when
// the cap is exceeded.
const MaxSnapshots = 50

// History is a linear, branch-discarding undo/redo stack of store
// snapshots. index points at the snapshot matching the current store state;
// -1 means no snapshot has been taken yet. Every fresh save after an undo
// discards the redo branch permanently.
type History struct {
	snapshots []Snapshot
	index     int
}

// NewHistory returns an empty history.
func NewHistory() *History { return &History{index: -1} }

// Save snapshots the store as the new current entry, discarding any redo
// branch. A save that would duplicate the current snapshot (the store
// content is unchanged) records nothing. Exceeding MaxSnapshots evicts the
// oldest entry; index stays valid under the sliding window.
func (h *History) Save(store *Store) {
	snap := takeSnapshot(store)
	if h.index >= 0 && h.snapshots[h.index].digest == snap.digest {
		return
	}
	h.snapshots = append(h.snapshots[:h.index+1], snap)
	if len(h.snapshots) > MaxSnapshots {
		h.snapshots = h.snapshots[1:]
	} else {
		h.index++
	}
}

// Undo restores the previous snapshot into the store. No-op when nothing
// older is retained.
func (h *History) Undo(store *Store) bool {
	if h.index <= 0 {
		return false
	}
	if err := h.snapshots[h.index-1].restore(store); err != nil {
		return false
	}
	h.index--
	return true
}

// Redo restores the next snapshot into the store. No-op at the newest entry.
func (h *History) Redo(store *Store) bool {
	if h.index >= len(h.snapshots)-1 {
		return false
	}
	if err := h.snapshots[h.index+1].restore(store); err != nil {
		return false
	}
	h.index++
	return true
}

// CanUndo reports whether an older snapshot is retained.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether an undone snapshot can be reapplied.
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len returns the number of retained snapshots.
func (h *History) Len() int { return len(h.snapshots) }
