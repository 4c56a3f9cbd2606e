// Package render draws a station network as a Graphviz DOT document, with a
// route highlighted. Stations are pinned at their coordinates ("pos" with a
// trailing "!"), so `neato -n` or `fdp` lay the map out geographically.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/transitpath/core"
)

// ErrNilGraph is returned by DOT for a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

const (
	graphName = "transit"

	pathColor    = "red"
	pathFill     = "lightpink"
	pathPenWidth = "3"
	linkColor    = "gray40"
)

// DOT renders g as an undirected graph. Consecutive stations of path are
// drawn in bold red; pass an empty path to render the bare network.
// Dangling links are not drawn.
func DOT(g *core.Graph, path core.Path) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	onPath := make(map[string]bool, len(path))
	pathEdges := make(map[[2]string]bool, len(path))
	for i, id := range path {
		onPath[id] = true
		if i > 0 {
			pathEdges[edgeKey(path[i-1], id)] = true
		}
	}

	out := gographviz.NewGraph()
	if err := out.SetName(graphName); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := out.SetDir(false); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := out.AddAttr(graphName, "overlap", "false"); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	ids := g.StationIDs()
	for _, id := range ids {
		st, _ := g.Station(id)
		attrs := map[string]string{
			"label":    quote(id),
			"pos":      quote(fmt.Sprintf("%s,%s!", num(st.Position.Lon), num(st.Position.Lat))),
			"shape":    "circle",
			"fontsize": "10",
		}
		if onPath[id] {
			attrs["style"] = "filled"
			attrs["fillcolor"] = pathFill
			attrs["color"] = pathColor
		}
		if err := out.AddNode(graphName, quote(id), attrs); err != nil {
			return "", fmt.Errorf("render: station %q: %w", id, err)
		}
	}

	for _, id := range ids {
		st, _ := g.Station(id)
		for _, nb := range st.Links {
			// each undirected link once, from its lower endpoint
			if nb < id && g.HasLink(nb, id) || !g.HasStation(nb) {
				continue
			}
			attrs := map[string]string{"color": linkColor}
			if pathEdges[edgeKey(id, nb)] {
				attrs["color"] = pathColor
				attrs["penwidth"] = pathPenWidth
			}
			if err := out.AddEdge(quote(id), quote(nb), false, attrs); err != nil {
				return "", fmt.Errorf("render: link %q-%q: %w", id, nb, err)
			}
		}
	}

	return out.String(), nil
}

func edgeKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
