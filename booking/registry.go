package booking

import "cinebook-cli/model"

// Registry owns one ShowState per show id. All entries are created at
// construction time and the map is never mutated afterwards, which makes
// concurrent lookups safe without locking. There is no removal and no
// on-demand creation: booking against an unregistered show id fails.
type Registry struct {
	states map[model.ShowID]*ShowState
}

// NewRegistry creates reservation state for every given show id. Duplicate
// ids collapse to a single entry.
func NewRegistry(showIDs []model.ShowID) *Registry {
	states := make(map[model.ShowID]*ShowState, len(showIDs))
	for _, id := range showIDs {
		if _, ok := states[id]; ok {
			continue
		}
		states[id] = NewShowState()
	}
	return &Registry{states: states}
}

// Lookup returns the reservation state for a show. The handle is stable for
// the lifetime of the process.
func (r *Registry) Lookup(showID model.ShowID) (*ShowState, bool) {
	state, ok := r.states[showID]
	return state, ok
}

// Available lists free seat labels for a show, empty for unknown ids.
func (r *Registry) Available(showID model.ShowID) []string {
	state, ok := r.states[showID]
	if !ok {
		return nil
	}
	return state.Available()
}

// Reserve books seats on a show, all-or-nothing.
func (r *Registry) Reserve(showID model.ShowID, labels []string) error {
	state, ok := r.states[showID]
	if !ok {
		return ErrUnknownShow
	}
	return state.Reserve(labels)
}
