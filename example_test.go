package anykey_test

import (
	"encoding/json"
	"fmt"

	"github.com/anykey/anykey"
)

type Point struct {
	A int `json:"a"`
	B int `json:"b"`
}

func ExampleMarshalMap() {
	m := map[Point]Point{{A: 3, B: 5}: {A: 7, B: 9}}
	data, _ := anykey.MarshalMap(m)
	fmt.Printf("%s", data)
	// Output: {"{\"a\":3,\"b\":5}":{"a":7,"b":9}}
}

func ExampleMarshalPairs() {
	pairs := []anykey.Pair[string, int]{{Key: "foo", Value: 5}}
	data, _ := anykey.MarshalPairs(pairs)
	fmt.Printf("%s", data)
	// Output: {"foo":5}
}

func ExampleUnmarshalPairs() {
	pairs, _ := anykey.UnmarshalPairs[int, Point]([]byte(`{"5":{"a":6,"b":7}}`))
	fmt.Println(pairs[0].Key, pairs[0].Value.A, pairs[0].Value.B)
	// Output: 5 6 7
}

func ExampleUnmarshalSeq() {
	// entry 2 has a bad key for int; the entries around it still decode
	seq, _ := anykey.UnmarshalSeq[int, int]([]byte(`{"1":10,"x":20,"3":30}`))
	total := 0
	for p, err := range seq {
		if err != nil {
			continue
		}
		total += p.Value
	}
	fmt.Println(total)
	// Output: 40
}

func ExampleMap() {
	type Inventory struct {
		Stock anykey.Map[Point, int] `json:"stock"`
	}
	inv := Inventory{Stock: anykey.Map[Point, int]{{A: 3, B: 5}: 2}}
	data, _ := json.Marshal(inv)
	fmt.Printf("%s", data)
	// Output: {"stock":{"{\"a\":3,\"b\":5}":2}}
}
