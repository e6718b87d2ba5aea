// Command capillary streams files through a find-and-replace table.
//
//	capillary --table smileys.yaml chat.log > chat.txt
package main

import "os"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
