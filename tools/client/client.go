package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/colima-services/reference-api/pkg/client"
	"github.com/colima-services/reference-api/pkg/env"
)

func init() {
	if err := env.Process(); err != nil {
		panic(err)
	}
}

func main() {
	c := client.Client()

	var (
		out interface{}
		err error
	)

	if len(os.Args) > 1 {
		out, err = c.Secret(os.Args[1])
	} else {
		out, err = c.Secrets()
	}

	if err != nil {
		panic(err)
	}

	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		panic(err)
	}

	fmt.Println(string(buf))
}
