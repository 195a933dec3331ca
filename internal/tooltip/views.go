package tooltip

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedView marks a datum whose shape does not match its view.
var ErrMalformedView = errors.New("malformed view")

// ClusterView describes a hexagon cluster of activity records.
// Position is [longitude, latitude].
type ClusterView struct {
	Position [2]float64        `json:"position"`
	Points   []json.RawMessage `json:"points"`
}

// Count returns the number of activity records in the cluster.
func (v ClusterView) Count() int {
	return len(v.Points)
}

// Longitude returns the east-west component of the position.
func (v ClusterView) Longitude() float64 { return v.Position[0] }

// Latitude returns the north-south component of the position.
func (v ClusterView) Latitude() float64 { return v.Position[1] }

// UnmarshalJSON requires a two-element numeric position and a points array.
func (v *ClusterView) UnmarshalJSON(data []byte) error {
	var raw struct {
		Position []*float64     `json:"position"`
		Points   json.RawMessage `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: cluster: %v", ErrMalformedView, err)
	}
	if len(raw.Position) != 2 {
		return fmt.Errorf("%w: cluster position needs 2 components, got %d", ErrMalformedView, len(raw.Position))
	}
	for i, c := range raw.Position {
		if c == nil {
			return fmt.Errorf("%w: cluster position component %d is null", ErrMalformedView, i)
		}
	}
	var points []json.RawMessage
	if len(raw.Points) > 0 && !isNull(raw.Points) {
		if err := json.Unmarshal(raw.Points, &points); err != nil {
			return fmt.Errorf("%w: cluster points must be an array", ErrMalformedView)
		}
	}
	v.Position = [2]float64{*raw.Position[0], *raw.Position[1]}
	v.Points = points
	return nil
}

// TripView describes a single fishing trip.
type TripView struct {
	CatchKg       float64 `json:"catch_kg"`
	CatchTaxon    string  `json:"catch_taxon"`
	TripDuration  float64 `json:"trip_duration"`
	TotalDistance float64 `json:"total_distance"`
}

// UnmarshalJSON requires all four trip fields to be present.
func (v *TripView) UnmarshalJSON(data []byte) error {
	var raw struct {
		CatchKg       *float64 `json:"catch_kg"`
		CatchTaxon    *string  `json:"catch_taxon"`
		TripDuration  *float64 `json:"trip_duration"`
		TotalDistance *float64 `json:"total_distance"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: trip: %v", ErrMalformedView, err)
	}
	var missing []string
	if raw.CatchKg == nil {
		missing = append(missing, "catch_kg")
	}
	if raw.CatchTaxon == nil {
		missing = append(missing, "catch_taxon")
	}
	if raw.TripDuration == nil {
		missing = append(missing, "trip_duration")
	}
	if raw.TotalDistance == nil {
		missing = append(missing, "total_distance")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: trip missing %v", ErrMalformedView, missing)
	}
	*v = TripView{
		CatchKg:       *raw.CatchKg,
		CatchTaxon:    *raw.CatchTaxon,
		TripDuration:  *raw.TripDuration,
		TotalDistance: *raw.TotalDistance,
	}
	return nil
}

func isNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
