// pkg/extension/discover.go
package extension

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Pattern is the naming convention for extension scripts. It is matched
// against the slash-separated path relative to the scripts root.
var Pattern = regexp.MustCompile(`extension[^.]*\.js$`)

// Discover walks root and returns the extension scripts below it, relative
// to root. Within a directory files come before subdirectories, each in
// lexical order. Anything under node_modules is ignored.
func Discover(root string) ([]string, error) {
	var found []string
	if err := discover(root, root, &found); err != nil {
		return nil, errors.Wrapf(err, "reading scripts root %s", root)
	}
	return found, nil
}

func discover(root, dir string, found *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool { return !e.IsDir() })
	dirs := lo.Filter(entries, func(e os.DirEntry, _ int) bool { return e.IsDir() })

	for _, f := range files {
		rel, err := filepath.Rel(root, filepath.Join(dir, f.Name()))
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if strings.Contains(rel, "node_modules") || !Pattern.MatchString(rel) {
			continue
		}
		*found = append(*found, rel)
	}

	for _, d := range dirs {
		if d.Name() == "node_modules" {
			continue
		}
		// Unreadable subdirectories are skipped, not fatal
		_ = discover(root, filepath.Join(dir, d.Name()), found)
	}

	return nil
}
