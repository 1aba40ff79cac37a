package main

import (
	"encoding/json"
	"fmt"

	kingpin "github.com/alecthomas/kingpin/v2"
)

func Dump(v interface{}) {
	serialized, err := json.MarshalIndent(v, " ", " ")
	kingpin.FatalIfError(err, "Can not serialize")

	fmt.Println(string(serialized))
}
