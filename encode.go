package anykey

import (
	"iter"
	"maps"

	"github.com/pkg/errors"
)

// Pair is one entry of a key-carrying collection.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// MarshalSeq writes the entries yielded by seq as one JSON object, one
// member per entry, in yield order. Member names come from the key's
// canonical JSON text (see package doc); member values are encoded
// exactly as the JSON layer would encode them standalone.
//
// The first entry whose key or value fails to encode aborts the whole
// call with that error. seq is read once and never retained.
func MarshalSeq[K, V any](seq iter.Seq2[K, V]) ([]byte, error) {
	kind := kindOf[K]()
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)
	stream.WriteObjectStart()
	first := true
	for k, v := range seq {
		if !first {
			stream.WriteMore()
		}
		first = false
		name, err := encodeKey(kind, k)
		if err != nil {
			return nil, err
		}
		stream.WriteObjectField(name)
		stream.WriteVal(v)
		if stream.Error != nil {
			return nil, errors.Wrap(stream.Error, "encode value")
		}
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, errors.Wrap(stream.Error, "encode object")
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// MarshalMap encodes m as a JSON object. m is only read; member order
// follows Go's map iteration order and is therefore unspecified.
func MarshalMap[K comparable, V any](m map[K]V) ([]byte, error) {
	return MarshalSeq(maps.All(m))
}

// MarshalPairs encodes pairs as a JSON object, one member per pair in
// slice order. The slice is only read. Duplicate keys are written as
// duplicate members; JSON readers usually keep the last one.
func MarshalPairs[K, V any](pairs []Pair[K, V]) ([]byte, error) {
	return MarshalSeq(func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	})
}

// MarshalDrain is MarshalMap for callers that are done with the source:
// m is emptied during the call and is empty when it returns, whether or
// not encoding succeeded.
func MarshalDrain[K comparable, V any](m map[K]V) ([]byte, error) {
	defer clear(m)
	return MarshalSeq(maps.All(m))
}
