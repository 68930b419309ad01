package anykey

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// keyKind tells how keys of a type appear as JSON object member names.
// The kind is a property of the key type, decided once per call and
// never per entry.
type keyKind uint8

const (
	// rawString keys are the plain string type. The member name is the
	// key itself; the only quoting is the one every member name gets.
	rawString keyKind = iota
	// structured keys are everything else. The member name content is
	// the key's full JSON encoding.
	structured
)

// kindOf classifies the key type K. Only the built-in string type is
// rawString; a defined type with string underlying has a JSON form of
// its own and stays structured.
func kindOf[K any]() keyKind {
	var zero K
	if _, ok := any(zero).(string); ok {
		return rawString
	}
	return structured
}

// encodeKey yields the member name content for key.
func encodeKey[K any](kind keyKind, key K) (string, error) {
	if kind == rawString {
		s, ok := any(key).(string)
		if !ok {
			return "", errors.Wrapf(errStringKey, "%T", key)
		}
		return s, nil
	}
	b, err := json.Marshal(key)
	if err != nil {
		return "", errors.Wrap(err, "encode key")
	}
	return string(b), nil
}

// decodeKey reverses encodeKey for the member name content name.
func decodeKey[K any](kind keyKind, name string) (K, error) {
	var key K
	if kind == rawString {
		p, ok := any(&key).(*string)
		if !ok {
			return key, errors.Wrapf(errStringKey, "%T", key)
		}
		*p = name
		return key, nil
	}
	if err := json.UnmarshalFromString(name, &key); err != nil {
		return key, &KeyError{Name: name, err: err}
	}
	return key, nil
}
