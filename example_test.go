package rkmatch_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/rkmatch"
)

func Example() {
	m, err := rkmatch.New(
		rkmatch.WithAlgorithm(rkmatch.Batch),
		rkmatch.WithChunkSize(4),
	)
	if err != nil {
		panic(err)
	}

	res, err := m.Match(context.Background(), []byte("aaaabbbbcccc"), []byte("xxaaaabbbbyy"))
	if err != nil {
		panic(err)
	}

	fmt.Println(res)
	// Output: 0.67 matched: 2 out of 3
}
