package compare

import (
	"fmt"
	"io"
)

// WriteReport prints one line per measurement followed by the verdict:
//
//	Dijkstra's - Elapsed Time: 41.2µs, Path Length: 2
//	A* - Elapsed Time: 18.9µs, Path Length: 2
//	Bellman-Ford - Elapsed Time: 160µs, Path Length: 2
//	All algorithms found paths with the same length.
func WriteReport(w io.Writer, ms []Measurement, o Outcome) error {
	for _, m := range ms {
		line := fmt.Sprintf("%s - Elapsed Time: %v, Path Length: %v", m.Algorithm, m.Elapsed, m.Length)
		if m.Err != nil {
			line += fmt.Sprintf(" (failed: %v)", m.Err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, Sentence(o)); err != nil {
		return err
	}
	if o.NoPath {
		if _, err := fmt.Fprintln(w, "No path exists between the requested stations."); err != nil {
			return err
		}
	}

	return nil
}

// Sentence renders the natural-language verdict for o.
func Sentence(o Outcome) string {
	switch o.Verdict {
	case Shortest:
		return fmt.Sprintf("%s found the shortest path.", o.Algorithm)
	case Longest:
		return fmt.Sprintf("%s found the longest path.", o.Algorithm)
	default:
		return "All algorithms found paths with the same length."
	}
}
