package loader

import (
	"fmt"
	"strings"

	"github.com/r3labs/diff/v3"

	"github.com/katalvlaran/transitpath/core"
)

// linkSep joins the endpoints of a link in diff output.
const linkSep = " -- "

// diffView is the shape compared by Diff: stations keyed by ID and links as
// "a -- b" strings, both order-insensitive.
type diffView struct {
	Stations []StationDoc `diff:"stations"`
	Links    []string     `diff:"links"`
}

func newDiffView(g *core.Graph) diffView {
	doc := FromGraph(g)
	v := diffView{Stations: doc.Stations, Links: make([]string, len(doc.Links))}
	for i, l := range doc.Links {
		v.Links[i] = strings.Join(l, linkSep)
	}

	return v
}

// Diff reports how network b differs from a: stations added, removed or
// moved, and links added or removed. Change paths look like
// ["stations", "Baker Street", "lat"] or ["links", "2"].
func Diff(a, b *core.Graph) (diff.Changelog, error) {
	cl, err := diff.Diff(newDiffView(a), newDiffView(b))
	if err != nil {
		return nil, fmt.Errorf("loader: diff: %w", err)
	}

	return cl, nil
}
