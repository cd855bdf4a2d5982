package wordsquare

import (
	"bufio"
	"os"
	"strings"
)

// ReadDictionary reads one word per line from path, ignoring blank lines
// and lines starting with '#'. Words are not filtered by length here;
// Encode does that.
func ReadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
