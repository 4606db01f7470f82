package registry

// denseIndex is a gap-free enumeration of token IDs: a growable slice giving
// index → ID plus a reverse map giving ID → index. Removal swaps the last
// element into the vacated slot, so both directions stay dense in O(1).
// Enumeration order is an artifact of the mutation history, not a guarantee.
//
// Callers must ensure an ID is a member before calling remove and not a
// member before calling insert; the index does not re-validate.
type denseIndex struct {
	ids []TokenID
	pos map[TokenID]int
}

func newDenseIndex() *denseIndex {
	return &denseIndex{pos: make(map[TokenID]int)}
}

// insert appends id at the next free slot and returns that slot.
func (d *denseIndex) insert(id TokenID) int {
	idx := len(d.ids)
	d.ids = append(d.ids, id)
	d.pos[id] = idx
	return idx
}

// remove deletes id, backfilling its slot from the last occupied slot.
func (d *denseIndex) remove(id TokenID) {
	idx := d.pos[id]
	last := len(d.ids) - 1
	if idx != last {
		moved := d.ids[last]
		d.ids[idx] = moved
		d.pos[moved] = idx
	}
	d.ids = d.ids[:last]
	delete(d.pos, id)
}

// at returns the ID at the given zero-based slot.
func (d *denseIndex) at(idx int) TokenID {
	return d.ids[idx]
}

func (d *denseIndex) count() int {
	return len(d.ids)
}

func (d *denseIndex) contains(id TokenID) bool {
	_, ok := d.pos[id]
	return ok
}

// clone returns an independent deep copy.
func (d *denseIndex) clone() *denseIndex {
	c := &denseIndex{
		ids: make([]TokenID, len(d.ids)),
		pos: make(map[TokenID]int, len(d.pos)),
	}
	copy(c.ids, d.ids)
	for id, idx := range d.pos {
		c.pos[id] = idx
	}
	return c
}
