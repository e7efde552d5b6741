package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// LoadEdgeList reads whitespace-separated "u v [weight]" records from r, one
// per line, and returns a populated Graph. Missing weight defaults to 1.0,
// matching the plain-edgelist fallback in the original graph-loading tool
// this module's engine was built to replace. Blank lines and lines starting
// with '#' are skipped. Malformed lines (unparsable node IDs, non-numeric
// weight, negative weight) are skipped rather than failing the whole load —
// per the ingestion-is-out-of-scope, never-fatal policy this module follows
// for external collaborators; a strict caller can inspect the returned
// skipped-line count.
//
// Complexity: O(lines).
func LoadEdgeList(r io.Reader) (*Graph, int, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	skipped := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			skipped++
			continue
		}

		u, errU := strconv.ParseInt(fields[0], 10, 64)
		v, errV := strconv.ParseInt(fields[1], 10, 64)
		if errU != nil || errV != nil {
			skipped++
			continue
		}

		weight := 1.0
		if len(fields) >= 3 {
			w, errW := strconv.ParseFloat(fields[2], 64)
			if errW != nil || w < 0 {
				skipped++
				continue
			}
			weight = w
		}

		if err := g.AddEdge(Node(u), Node(v), weight); err != nil {
			skipped++
			continue
		}
	}

	if err := scanner.Err(); err != nil {
		return g, skipped, err
	}

	return g, skipped, nil
}
