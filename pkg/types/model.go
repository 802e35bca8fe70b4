package types

// FilterSaver is the slice of the saved filter store the model needs when
// an apply also persists the search.
type FilterSaver interface {
	Save(name, duration string, filters FilterValues) (string, error)
}

// FilterModel owns the single mutable FilterValues for the filter
// container. Widgets mutate Values() through their callbacks; Apply hands
// a snapshot to the registered callback.
type FilterModel struct {
	values  FilterValues
	onApply func(FilterValues)
}

func NewFilterModel(onApply func(FilterValues)) *FilterModel {
	return &FilterModel{
		values:  DefaultFilterValues(),
		onApply: onApply,
	}
}

func (m *FilterModel) Values() *FilterValues {
	return &m.values
}

func (m *FilterModel) Reset() {
	m.values.Reset()
}

// Apply snapshots the current values and invokes the apply callback. There
// are no error conditions on this path; child widgets pre-validate.
func (m *FilterModel) Apply() FilterValues {
	snapshot := m.values.Snapshot()
	if m.onApply != nil {
		m.onApply(snapshot)
	}
	return snapshot
}

// ApplyAndSave routes the snapshot through the saved filter store before
// applying. A store failure skips neither the apply nor surfaces more than
// the returned error.
func (m *FilterModel) ApplyAndSave(store FilterSaver, name, duration string) (string, error) {
	snapshot := m.values.Snapshot()
	id, err := store.Save(name, duration, snapshot)
	if m.onApply != nil {
		m.onApply(snapshot)
	}
	return id, err
}
