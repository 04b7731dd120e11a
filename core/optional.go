package core

import (
	"github.com/volatiletech/null/v8"
)

// OptionalTime distinguishes an absent JSON key (Set == false) from an explicit `null`
// (Set == true, Value invalid) in partial updates.
type OptionalTime struct {
	Set   bool
	Value null.Time
}

func OptionalTimeFrom(v null.Time) OptionalTime {
	return OptionalTime{Set: true, Value: v}
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	return o.Value.UnmarshalJSON(data)
}

func (o OptionalTime) MarshalJSON() ([]byte, error) {
	return o.Value.MarshalJSON()
}
