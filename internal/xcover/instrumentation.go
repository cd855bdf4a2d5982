package xcover

import (
	"fmt"

	"github.com/fatih/color"
)

// Stats tracks, per recursion depth, how many options the solver selected
// and how many links it updated while covering (uncover restores those
// links and is not counted). It is an owned
// value returned by SolveWithStats, not shared package state: each search
// gets its own.
type Stats struct {
	depth   int
	nodes   []int64
	updates []int64
}

// nil-safe: a *Stats obtained from the zero value of SolveOptions (stats
// disabled) is nil, and every method below tolerates that.

func (s *Stats) setDepth(d int) {
	if s == nil {
		return
	}
	s.depth = d
	for len(s.nodes) <= d {
		s.nodes = append(s.nodes, 0)
		s.updates = append(s.updates, 0)
	}
}

func (s *Stats) nodeVisited() {
	if s == nil {
		return
	}
	s.nodes[s.depth]++
}

func (s *Stats) update() {
	if s == nil {
		return
	}
	s.updates[s.depth]++
}

// Depths returns the number of recursion levels recorded during the
// search, one more than the deepest level reached.
func (s *Stats) Depths() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Print writes a depth/nodes/updates/updates-per-node table, with a totals
// row, in the same color-coded style as the teacher's DancingLinksStats.
func (s *Stats) Print() {
	if s == nil {
		return
	}
	fmt.Printf("%s\n", color.HiCyanString("depth\tnodes\tupdates\tupdates/node"))

	var totalNodes, totalUpdates int64
	for d := range s.nodes {
		n, u := s.nodes[d], s.updates[d]
		totalNodes += n
		totalUpdates += u

		perNode := "-"
		if n > 0 {
			perNode = fmt.Sprintf("%.2f", float64(u)/float64(n))
		}
		fmt.Printf("%d\t%s\t%s\t%s\n",
			d, color.HiGreenString("%d", n), color.HiYellowString("%d", u), perNode)
	}

	perNode := "-"
	if totalNodes > 0 {
		perNode = fmt.Sprintf("%.2f", float64(totalUpdates)/float64(totalNodes))
	}
	fmt.Printf("%s\t%s\t%s\t%s\n",
		color.HiWhiteString("total"),
		color.HiGreenString("%d", totalNodes),
		color.HiYellowString("%d", totalUpdates),
		perNode)
}
