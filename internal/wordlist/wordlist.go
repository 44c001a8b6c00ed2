// Package wordlist provides the built-in typing vocabulary.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed words.txt
var builtin string

// Default returns the built-in vocabulary, one word per entry.
func Default() ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(strings.NewReader(builtin))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
