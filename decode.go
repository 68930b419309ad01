package anykey

import (
	"io"
	"iter"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// rawEntry is one still-encoded member of the source object.
type rawEntry struct {
	name  string
	value []byte
}

// readObject parses data as a single JSON object and captures its
// members in document order, values left encoded. It returns
// ErrNotObject if the top-level value is valid JSON of another type.
func readObject(data []byte) ([]rawEntry, error) {
	it := json.BorrowIterator(data)
	defer json.ReturnIterator(it)
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
	case jsoniter.InvalidValue:
		it.Skip() // surface the syntax error
		if it.Error != nil {
			return nil, errors.Wrap(it.Error, "parse object")
		}
		return nil, errors.New("parse object: invalid input")
	default:
		return nil, ErrNotObject
	}
	var ee []rawEntry
	ok := it.ReadMapCB(func(it *jsoniter.Iterator, name string) bool {
		ee = append(ee, rawEntry{name: name, value: it.SkipAndReturnBytes()})
		return it.Error == nil
	})
	if !ok {
		if it.Error != nil && it.Error != io.EOF {
			return nil, errors.Wrap(it.Error, "parse object")
		}
		return nil, errors.New("parse object: unexpected end of input")
	}
	if it.WhatIsNext() != jsoniter.InvalidValue || it.Error == nil {
		return nil, errors.New("trailing data after object")
	}
	return ee, nil
}

// decodeEntry turns one raw member into a Pair. Key and value failures
// surface as *KeyError and *ValueError respectively.
func decodeEntry[K, V any](kind keyKind, e rawEntry) (Pair[K, V], error) {
	k, err := decodeKey[K](kind, e.name)
	if err != nil {
		return Pair[K, V]{}, err
	}
	var v V
	if err := json.Unmarshal(e.value, &v); err != nil {
		return Pair[K, V]{}, &ValueError{Name: e.name, err: err}
	}
	return Pair[K, V]{Key: k, Value: v}, nil
}

// UnmarshalMap parses data as a JSON object and decodes every member
// name back into a K. The first member that fails to decode aborts the
// call with that error. Duplicate decoded keys follow map semantics:
// the last member wins.
func UnmarshalMap[K comparable, V any](data []byte) (map[K]V, error) {
	ee, err := readObject(data)
	if err != nil {
		return nil, err
	}
	kind := kindOf[K]()
	m := make(map[K]V, len(ee))
	for _, e := range ee {
		p, err := decodeEntry[K, V](kind, e)
		if err != nil {
			return nil, err
		}
		m[p.Key] = p.Value
	}
	return m, nil
}

// UnmarshalPairs is UnmarshalMap without the deduplication: every
// member becomes one pair, in document order, duplicates included.
func UnmarshalPairs[K, V any](data []byte) ([]Pair[K, V], error) {
	ee, err := readObject(data)
	if err != nil {
		return nil, err
	}
	kind := kindOf[K]()
	pairs := make([]Pair[K, V], 0, len(ee))
	for _, e := range ee {
		p, err := decodeEntry[K, V](kind, e)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// UnmarshalSeq parses data as a JSON object and returns a single-pass
// sequence that decodes one member per pull, in document order. The
// returned error only covers the top-level parse; each pulled pair
// carries its own error, and a failed entry does not stop later
// entries from decoding:
//
//	seq, err := anykey.UnmarshalSeq[Point, int](data)
//	if err != nil { ... }
//	for p, err := range seq {
//	    if err != nil {
//	        continue // or break; both are fine
//	    }
//	    coll.Insert(p.Key, p.Value)
//	}
//
// The sequence is not restartable.
func UnmarshalSeq[K, V any](data []byte) (iter.Seq2[Pair[K, V], error], error) {
	ee, err := readObject(data)
	if err != nil {
		return nil, err
	}
	kind := kindOf[K]()
	return func(yield func(Pair[K, V], error) bool) {
		for _, e := range ee {
			if !yield(decodeEntry[K, V](kind, e)) {
				return
			}
		}
	}, nil
}
