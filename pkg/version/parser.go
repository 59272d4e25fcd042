// pkg/version/parser.go
package version

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse reads a version descriptor and extracts the version triple.
// Unknown lines are ignored; a missing marker or a token that is not an
// integer leaves that field at 0. Parse never fails.
func Parse(r io.Reader) Version {
	text, err := readText(r)
	if err != nil && text == "" {
		return Version{}
	}
	return parseText(text)
}

// readText decodes the descriptor, honouring a UTF-8 or UTF-16 BOM
func readText(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(io.LimitReader(transform.NewReader(r, decoder), maxDescriptorSize))
	return string(data), err
}

func parseText(text string) Version {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	var v Version
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "#define" {
			continue
		}

		var token string
		if len(fields) > 2 {
			token = fields[2]
		}

		switch fields[1] {
		case majorMarker:
			v.Major = parseToken(token)
		case minorMarker:
			v.Minor = parseToken(token)
		case patchMarker:
			v.Patch = parseToken(token)
		}
	}
	return v
}

func parseToken(token string) int {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	return n
}
