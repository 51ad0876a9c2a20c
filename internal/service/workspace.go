package service

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

// Workspace is the table state of one browser session: the cached records,
// the filtered subset, per-row edit state, the record linked to the session
// and the selected dashboard section.
type Workspace struct {
	mu sync.Mutex

	records  []entity.Record
	filtered []entity.Record
	rows     map[uuid.UUID]entity.RowState

	link    entity.LinkState
	self    entity.Record
	section entity.Section

	lastUsed time.Time
}

func newWorkspace() *Workspace {
	return &Workspace{
		rows:     make(map[uuid.UUID]entity.RowState),
		link:     entity.LinkUnlinked,
		section:  entity.DefaultSection,
		lastUsed: time.Now(),
	}
}

// replace swaps the cache wholesale. The filtered subset is dropped with it.
func (w *Workspace) replace(records []entity.Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.records = records
	w.filtered = nil

	for id, state := range w.rows {
		if state != entity.RowPending {
			delete(w.rows, id)
		}
	}
}

func (w *Workspace) find(id uuid.UUID) (entity.Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, r := range w.records {
		if r.ID == id {
			return r, true
		}
	}

	return entity.Record{}, false
}

func (w *Workspace) canEdit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.link == entity.LinkLinked && w.self.Role == entity.RoleAdmin
}

func (w *Workspace) linked() (entity.Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.self, w.link == entity.LinkLinked
}

// beginProvisioning moves Unlinked to Provisioning. It reports false when
// another load is already provisioning.
func (w *Workspace) beginProvisioning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.link == entity.LinkProvisioning {
		return false
	}

	w.link = entity.LinkProvisioning

	return true
}

func (w *Workspace) linkTo(self entity.Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.link = entity.LinkLinked
	w.self = self
}

func (w *Workspace) unlink() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.link = entity.LinkUnlinked
	w.self = entity.Record{}
}

func (w *Workspace) setFilter(f entity.Filter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.filtered = ApplyFilter(w.records, f)
}

func (w *Workspace) clearFilter() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.filtered = nil
}

func (w *Workspace) begin(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.transitionLocked(id, entity.RowCommit)
}

func (w *Workspace) reject(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.transitionLocked(id, entity.RowReject)
}

// resolveUpdate settles a pending edit and patches the row in both lists.
func (w *Workspace) resolveUpdate(record entity.Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.transitionLocked(record.ID, entity.RowResolve)

	patch := func(list []entity.Record) {
		for i := range list {
			if list[i].ID == record.ID {
				list[i] = record
			}
		}
	}

	patch(w.records)
	patch(w.filtered)

	if w.link == entity.LinkLinked && w.self.ID == record.ID {
		w.self = record
	}
}

// resolveDelete settles a pending delete and removes the row from both lists.
func (w *Workspace) resolveDelete(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.rows, id)

	remove := func(list []entity.Record) []entity.Record {
		out := list[:0:0]

		for _, r := range list {
			if r.ID != id {
				out = append(out, r)
			}
		}

		return out
	}

	w.records = remove(w.records)

	if w.filtered != nil {
		w.filtered = remove(w.filtered)
		if len(w.filtered) == 0 {
			w.filtered = nil
		}
	}
}

// add appends a created record and shows the unfiltered list.
func (w *Workspace) add(record entity.Record) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.records = append(w.records, record)
	w.filtered = nil
}

func (w *Workspace) transitionLocked(id uuid.UUID, event entity.RowEvent) error {
	current, ok := w.rows[id]
	if !ok {
		current = entity.RowClean
	}

	next, err := current.Next(event)
	if err != nil {
		return err
	}

	w.rows[id] = next

	return nil
}

func (w *Workspace) rowState(id uuid.UUID) entity.RowState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state, ok := w.rows[id]
	if !ok {
		return entity.RowClean
	}

	return state
}

func (w *Workspace) selectSection(s entity.Section) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.section = s
}

func (w *Workspace) currentSection() entity.Section {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.section
}

// displayed returns the rows the table shows: the filtered subset if any, else everything.
func (w *Workspace) displayed() ([]entity.Record, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	src := w.records
	filtered := w.filtered != nil

	if filtered {
		src = w.filtered
	}

	out := make([]entity.Record, len(src))
	copy(out, src)

	return out, filtered
}

func (w *Workspace) view() entity.RecordsView {
	records, filtered := w.displayed()

	rows := make([]entity.RecordRow, 0, len(records))

	for _, r := range records {
		rows = append(rows, entity.RecordRow{
			Record:     r,
			RoleLabel:  r.Role.Label(),
			StateLabel: entity.StateLabel(r.State),
			RowState:   w.rowState(r.ID),
		})
	}

	return entity.RecordsView{
		Rows:     rows,
		Filtered: filtered,
		CanEdit:  w.canEdit(),
	}
}

// Workspaces holds one Workspace per browser session.
type Workspaces struct {
	mu    sync.Mutex
	items map[string]*Workspace
}

func NewWorkspaces() *Workspaces {
	return &Workspaces{items: make(map[string]*Workspace)}
}

func (ws *Workspaces) Get(sid string) *Workspace {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	w, ok := ws.items[sid]
	if !ok {
		w = newWorkspace()
		ws.items[sid] = w
	}

	w.mu.Lock()
	w.lastUsed = time.Now()
	w.mu.Unlock()

	return w
}

func (ws *Workspaces) Drop(sids ...string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	for _, sid := range sids {
		delete(ws.items, sid)
	}
}

// DropIdle removes workspaces unused since before deadline and returns how many were removed.
func (ws *Workspaces) DropIdle(deadline time.Time) int {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	n := 0

	for sid, w := range ws.items {
		w.mu.Lock()
		idle := w.lastUsed.Before(deadline)
		w.mu.Unlock()

		if idle {
			delete(ws.items, sid)
			n++
		}
	}

	return n
}
