package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/capillary/dict"
)

func main() {
	d := dict.New[rune, string]()
	d.Insert([]rune(":D"), "Hi there")
	d.Insert([]rune(":)"), "Hello")
	d.Insert([]rune(":-)"), "Hello with a nose")
	d.Insert([]rune("<3"), "love")
	//d.Insert([]rune(":"), "colon")

	d.Dump(os.Stdout)

	println("------")

	// feed the text one rune at a time and report every hit
	l := d.Lookup()
	for i, r := range []rune("so :-) then :D <3 :x") {
		if err := l.PartialSearch(r); err != nil {
			continue
		}
		if val, ok := l.TryResolve(); ok {
			fmt.Printf("%2d: %q (depth %d)\n", i, val, l.Depth())
			l.Reset()
		}
	}

	println("------")

	visitor := func(item dict.Item[rune, string]) bool {
		fmt.Printf("%s -> %s\n", string(item.Key), item.Val)
		return true
	}
	d.Iter([]rune(":"), visitor)
}
