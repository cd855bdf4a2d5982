package xcover

import "sort"

// emit decodes the current solution stack into one sorted-ascending list
// of item identifiers per chosen option, in depth order, and hands it to
// the installed callback.
func (m *Matrix) emit() {
	if m.cb == nil {
		return
	}

	options := make([][]int, len(m.stack))
	for depth, c := range m.stack {
		ids := []int{c.col.id}
		for j := c.right; j != c; j = j.right {
			ids = append(ids, j.col.id)
		}
		sort.Ints(ids)
		options[depth] = ids
	}
	m.cb(options)
}
