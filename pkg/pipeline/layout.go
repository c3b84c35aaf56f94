package pipeline

import (
	"github.com/tougshire/orgchart/pkg/dag/transform"
	"github.com/tougshire/orgchart/pkg/layout"
)

// ComputeLayout orders every generation with orderer and places the rows
// as horizontal bands.
func ComputeLayout(l *transform.Layering, orderer layout.Orderer) layout.Layout {
	rows := orderer.OrderRows(l.Graph, l.Layers)
	return layout.Multipartite(rows, layout.Options{})
}
