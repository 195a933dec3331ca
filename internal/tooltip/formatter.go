// Package tooltip renders the HTML fragments shown when a map element is
// hovered: hexagon activity clusters and fishing trip paths.
package tooltip

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// Formatter produces tooltip markup. A nil view means there is nothing to
// show and yields ok == false.
type Formatter interface {
	ClusterTooltip(view *ClusterView) (markup string, ok bool)
	PathTooltip(view *TripView) (markup string, ok bool)
}

// HTMLFormatter is the stateless default Formatter.
type HTMLFormatter struct{}

var _ Formatter = HTMLFormatter{}

func (HTMLFormatter) ClusterTooltip(view *ClusterView) (string, bool) {
	if view == nil {
		return "", false
	}
	return renderString(ClusterCard(*view)), true
}

func (HTMLFormatter) PathTooltip(view *TripView) (string, bool) {
	if view == nil {
		return "", false
	}
	return renderString(PathCard(*view)), true
}

// renderString renders into memory; a strings.Builder never fails a write.
func renderString(component templ.Component) string {
	var sb strings.Builder
	_ = component.Render(context.Background(), &sb)
	return sb.String()
}
