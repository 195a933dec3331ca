package tooltip

import (
	"encoding/json"
	"testing"
)

func TestClusterViewDecode(t *testing.T) {
	var view ClusterView
	if err := json.Unmarshal([]byte(`{"position":[-9.5,38.7],"points":[{"id":1},{"id":2}]}`), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Longitude() != -9.5 || view.Latitude() != 38.7 {
		t.Fatalf("unexpected position: %v", view.Position)
	}
	if view.Count() != 2 {
		t.Fatalf("expected 2 points, got %d", view.Count())
	}
}

func TestClusterViewNullPoints(t *testing.T) {
	var view ClusterView
	if err := json.Unmarshal([]byte(`{"position":[0,0],"points":null}`), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Count() != 0 {
		t.Fatalf("expected empty cluster, got %d", view.Count())
	}
}

func TestTripViewDecode(t *testing.T) {
	var view TripView
	raw := `{"catch_kg":0,"catch_taxon":"","trip_duration":0,"total_distance":0}`
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		t.Fatalf("zero values are present values: %v", err)
	}
	if view != (TripView{}) {
		t.Fatalf("unexpected view: %+v", view)
	}
}
