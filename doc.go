/*
Package anykey encodes and decodes JSON objects whose keys are not strings.

JSON restricts object member names to strings, so most JSON layers
refuse to encode a map[int]T or a map keyed by a struct. anykey
bridges the gap: each key is turned into its canonical JSON text and
that text becomes the member name, so

	map[Point]Point{{A: 3, B: 5}: {A: 7, B: 9}}

becomes

	{"{\"a\":3,\"b\":5}":{"a":7,"b":9}}

and decodes back to the original map. Keys of the plain string type
pass through untouched, so for map[string]T the output is
byte-identical to what the JSON layer produces on its own.

Serialization streams entries one at a time from any map, slice of
pairs, or iter.Seq2 without building an intermediate string-keyed
copy. Deserialization offers an eager map (UnmarshalMap), an eager
document-ordered pair list (UnmarshalPairs) and a lazy pull sequence
(UnmarshalSeq) for folding into arbitrary collections.

The Map and Pairs types carry the same conversions into struct
fields: declare a field as anykey.Map[K,V] and the surrounding
struct keeps working with encoding/json or jsoniter unchanged, at
any nesting depth.
*/
package anykey // import "github.com/anykey/anykey"
