package record

import (
	"bufio"
	"os"
	"strings"
)

// LoadPathList reads a newline-delimited file of scan roots, one of the
// four target-resolution modes recovered from
// original_source/main.py:_resolve_targets (SPEC_FULL.md §10). Blank
// lines and lines starting with '#' are skipped.
func LoadPathList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var roots []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roots = append(roots, line)
	}
	return roots, scanner.Err()
}
