package domain

import "encoding/json"

// Optional records whether a field was present in a JSON document. Partial
// updates need to tell "absent, keep the current value" apart from "explicit
// null, overwrite" — plain pointers cannot express both.
type Optional[T any] struct {
	Value T
	Set   bool
}

// UnmarshalJSON is only invoked for keys that appear in the document, so Set
// is true exactly when the field was provided. A JSON null leaves Value at
// the zero value of T.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
