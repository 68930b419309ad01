package anykey

import "maps"

// Map is a map whose keys may be any JSON-encodable comparable type.
// It implements json.Marshaler and json.Unmarshaler, so a struct field
// declared as Map takes part in the surrounding struct's ordinary
// (de)serialization — including when such structs are themselves keys
// or values of another Map or Pairs, at any depth.
type Map[K comparable, V any] map[K]V

// MarshalJSON implements json.Marshaler. A nil Map encodes as {}.
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	return MarshalSeq(maps.All(map[K]V(m)))
}

// UnmarshalJSON implements json.Unmarshaler. Prior contents of m are
// replaced, not merged.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	d, err := UnmarshalMap[K, V](data)
	if err != nil {
		return err
	}
	*m = d
	return nil
}

// Pairs is the ordered counterpart of Map: a slice of pairs that
// encodes to the same JSON object shape, one member per pair in slice
// order, and decodes back preserving document order. Duplicate keys
// survive a round trip.
type Pairs[K, V any] []Pair[K, V]

// MarshalJSON implements json.Marshaler. Nil Pairs encode as {}.
func (p Pairs[K, V]) MarshalJSON() ([]byte, error) {
	return MarshalPairs([]Pair[K, V](p))
}

// UnmarshalJSON implements json.Unmarshaler. Prior contents of p are
// replaced.
func (p *Pairs[K, V]) UnmarshalJSON(data []byte) error {
	d, err := UnmarshalPairs[K, V](data)
	if err != nil {
		return err
	}
	*p = d
	return nil
}
