package types

import (
	"testing"

	"github.com/crebase/listing-finder/pkg/numrange"
)

func TestDefaultsAreUnrestricted(t *testing.T) {
	f := DefaultFilterValues()
	if !f.PropertyTypes.IsAll() {
		t.Errorf("Expected the All sentinel by default, got %v", f.PropertyTypes)
	}
	if !f.Price.Max.Open || f.Price.Min.Value != 0 {
		t.Errorf("Expected a full width price range, got %+v", f.Price)
	}
	if len(f.ListingStatus) != 4 {
		t.Errorf("Expected the default status subset, got %v", f.ListingStatus)
	}
	if f.Measurement != MeasureUnits {
		t.Errorf("Expected units measurement default, got %s", f.Measurement)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	f := DefaultFilterValues()
	f.Keywords = "car wash"
	f.Price.Min = numrange.Bounded(500_000)
	f.Reset()
	if !f.Equal(DefaultFilterValues()) {
		t.Errorf("Reset did not restore defaults: %+v", f)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	f := DefaultFilterValues()
	f.Location = []string{"Denver"}
	snap := f.Snapshot()
	f.Location[0] = "Boulder"
	f.PropertyTypes.ToggleType("Office")
	if snap.Location[0] != "Denver" {
		t.Errorf("Snapshot shares the location slice")
	}
	if !snap.PropertyTypes.IsAll() {
		t.Errorf("Snapshot shares the selection: %v", snap.PropertyTypes)
	}
}

type recordingSaver struct {
	name string
	got  FilterValues
}

func (r *recordingSaver) Save(name, duration string, filters FilterValues) (string, error) {
	r.name = name
	r.got = filters
	return "id-1", nil
}

func TestModelApplyAndSaveRoutesThroughStore(t *testing.T) {
	var applied *FilterValues
	m := NewFilterModel(func(f FilterValues) { applied = &f })
	m.Values().Keywords = "drive-thru"

	saver := &recordingSaver{}
	id, err := m.ApplyAndSave(saver, "qsr deals", "90d")
	if err != nil || id != "id-1" {
		t.Fatalf("Unexpected save result: %s %v", id, err)
	}
	if saver.name != "qsr deals" || saver.got.Keywords != "drive-thru" {
		t.Errorf("Store did not receive the snapshot: %+v", saver.got)
	}
	if applied == nil || applied.Keywords != "drive-thru" {
		t.Errorf("Apply callback did not receive the snapshot")
	}
}

func TestModelApplyWithoutSave(t *testing.T) {
	count := 0
	m := NewFilterModel(func(FilterValues) { count++ })
	m.Apply()
	if count != 1 {
		t.Errorf("Expected one apply callback, got %d", count)
	}
}
