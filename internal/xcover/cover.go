package xcover

// cover hides header h and every option containing h. It is the exact
// inverse of uncover when the two are paired in LIFO order: cover walks
// down-then-right, uncover walks up-then-left, so the last splice cover
// makes is the first one uncover undoes.
func (m *Matrix) cover(h *node, stats *Stats) {
	h.left.right = h.right
	h.right.left = h.left
	stats.update()

	for i := h.down; i != h; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.up.down = j.down
			j.down.up = j.up
			j.col.count--
			stats.update()
		}
	}
}

func (m *Matrix) uncover(h *node, stats *Stats) {
	for i := h.up; i != h; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.count++
			j.down.up = j
			j.up.down = j
		}
	}

	h.left.right = h
	h.right.left = h
}
