// Command wordsquare builds an n x n word square from a dictionary via
// the exact-cover engine in internal/xcover.
package main

import (
	"flag"

	"github.com/fatih/color"
	"github.com/kpitt/xcover/internal/wordsquare"
)

func main() {
	n := flag.Int("n", 3, "word square size")
	dict := flag.String("dict", "", "path to a newline-delimited word list (defaults to the built-in 3-letter list when -n=3)")
	flag.Parse()

	words := wordsquare.DefaultThreeLetterWords
	if *dict != "" {
		loaded, err := wordsquare.ReadDictionary(*dict)
		if err != nil {
			color.HiRed("error reading %s: %v", *dict, err)
			return
		}
		words = loaded
	} else if *n != 3 {
		color.HiRed("error: -dict is required when -n != 3")
		return
	}

	grid, ok := wordsquare.Solve(*n, words)
	if !ok {
		color.HiRed("No %dx%d word square found", *n, *n)
		return
	}
	wordsquare.Print(grid)
}
