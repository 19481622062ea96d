package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidRow reports a line with no words.
var ErrInvalidRow = errors.New("parse: row has no words")

// MaxWords is the number of words kept per row: from, to and weight.
const MaxWords = 3

// Input is a parsed edge list. Edges rows have two or three fields;
// Isolated holds the labels of one-word rows, in input order.
type Input struct {
	Edges    [][]string
	Isolated []string
}

// Empty reports whether in holds neither edges nor isolated nodes.
func (in Input) Empty() bool { return len(in.Edges) == 0 && len(in.Isolated) == 0 }

// Text parses s. An invalid row yields the empty Input.
func Text(s string) Input {
	in, err := Read(strings.NewReader(s))
	if err != nil {
		return Input{}
	}

	return in
}

// Read parses r line by line. On the first invalid row it returns the empty
// Input and an error wrapping ErrInvalidRow with the 1-based line number.
func Read(r io.Reader) (Input, error) {
	var in Input
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSuffix(s.Text(), "\r")
		if line == "" {
			continue
		}
		words := Words(line)
		switch len(words) {
		case 0:
			return Input{}, fmt.Errorf("%w: line %d", ErrInvalidRow, n)
		case 1:
			in.Isolated = append(in.Isolated, words[0])
		default:
			in.Edges = append(in.Edges, words)
		}
	}
	if err := s.Err(); err != nil {
		return Input{}, fmt.Errorf("parse: reading input: %w", err)
	}

	return in, nil
}

// Words splits a row on single spaces, drops empty words and keeps at most
// MaxWords of them.
func Words(row string) []string {
	words := make([]string, 0, MaxWords)
	for _, w := range strings.Split(row, " ") {
		if w == "" {
			continue
		}
		words = append(words, w)
		if len(words) == MaxWords {
			break
		}
	}

	return words
}
