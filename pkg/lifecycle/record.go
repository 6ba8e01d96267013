package lifecycle

// Record exposes an entity's current field values to the engine.
type Record interface {
	// FieldValue returns the value of the named field and whether it is set.
	FieldValue(name string) (string, bool)
}

// Values is a Record backed by a map.
type Values map[string]string

func (v Values) FieldValue(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// RecordFunc adapts a function to Record.
type RecordFunc func(name string) (string, bool)

func (f RecordFunc) FieldValue(name string) (string, bool) {
	return f(name)
}
