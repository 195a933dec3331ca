package tooltip

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

const (
	clusterHeader = "Activity Cluster"
	tripHeader    = "Fishing Trip Details"
)

// card writes the shared tooltip skeleton around body.
func card(w io.Writer, header string, body func(io.Writer) error) error {
	if _, err := fmt.Fprintf(w, "<div class='tooltip-content'><div class='tooltip-header'>%s</div>", header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<div class='tooltip-body'>"); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</div></div>"); err != nil {
		return err
	}
	return nil
}

func row(w io.Writer, label, value string) error {
	_, err := fmt.Fprintf(w, "<p><strong>%s:</strong> %s</p>", label, value)
	return err
}

// ClusterCard renders the hover card for a hexagon cluster.
func ClusterCard(view ClusterView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return card(w, clusterHeader, func(w io.Writer) error {
			location := fmt.Sprintf("%s°N, %s°E", Coordinate(view.Latitude()), Coordinate(view.Longitude()))
			if err := row(w, "Location", location); err != nil {
				return err
			}
			return row(w, "Activities", fmt.Sprintf("%d", view.Count()))
		})
	})
}

// PathCard renders the hover card for a trip path. The taxon is escaped;
// every other value is a formatted number.
func PathCard(view TripView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return card(w, tripHeader, func(w io.Writer) error {
			if err := row(w, "Catch", Kilograms(view.CatchKg)); err != nil {
				return err
			}
			if err := row(w, "Species", html.EscapeString(view.CatchTaxon)); err != nil {
				return err
			}
			if err := row(w, "Duration", Hours(view.TripDuration)); err != nil {
				return err
			}
			return row(w, "Distance", Distance(view.TotalDistance))
		})
	})
}
