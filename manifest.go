package gobundle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gobundle/gobundle/bundle"
)

// ReadManifest reads a JAR-style manifest from r into a header map.
// Each header is "Name: value"; continuation lines begin with a single
// space and append to the previous value; a blank line ends the main
// section. When a header name repeats, the last occurrence wins.
func ReadManifest(r io.Reader) (map[string]string, error) {
	headers := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lastName string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break // end of main section
		}
		if line[0] == ' ' {
			if lastName == "" {
				return nil, fmt.Errorf("%w: line %d: continuation without a header",
					bundle.ErrMalformedManifest, lineNo)
			}
			headers[lastName] += line[1:]
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: line %d: expected \"Name: value\", got %q",
				bundle.ErrMalformedManifest, lineNo, line)
		}
		lastName = strings.TrimSpace(name)
		headers[lastName] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return headers, nil
}

// ReadManifestFile reads a manifest file from disk.
func ReadManifestFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadManifest(f)
}
