package randinit_test

import (
	"fmt"
	"log"
	"os"

	"github.com/opd-ai/go-randinit"
)

func ExampleAccept() {
	fmt.Println(randinit.Accept(0x0f0f0f0f))
	fmt.Println(randinit.Accept(0x00ffff00))
	// Output:
	// true
	// false
}

func ExampleGenerator_WriteHeader() {
	gen, err := randinit.New(randinit.Config{})
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.WriteHeader(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
