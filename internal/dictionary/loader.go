// Package dictionary loads newline-delimited word lists into a trie.Trie.
// It is a thin collaborator around the core search structures and carries
// no search logic of its own.
package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/gofuzzy/levdex/trie"
)

// Load scans r line by line, inserting each non-blank line into t after
// lower-casing it, mirroring the dictionary ingestion in the teacher's
// typeahead example (bufio.Scanner over bufio.ScanLines, strings.ToLower
// before Set). It returns the number of words inserted.
func Load(t *trie.Trie, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	count := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		t.Insert(strings.ToLower(word))
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, errors.Wrap(err, "dictionary: scan failed")
	}
	return count, nil
}

// LoadFile opens path and delegates to Load, wrapping any I/O error with
// the offending path so callers and logs can tell which dictionary file
// failed.
func LoadFile(t *trie.Trie, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "dictionary: open %q", path)
	}
	defer f.Close()

	count, err := Load(t, f)
	if err != nil {
		return count, errors.Wrapf(err, "dictionary: load %q", path)
	}
	return count, nil
}
