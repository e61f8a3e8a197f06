// Package scan streams raster files out of a directory tree.
package scan

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
)

// FileItem is one scanned file.
type FileItem struct {
	Path string
}

// FileItems is an ordered collection of scanned files.
type FileItems []FileItem

// FileScannerImpl walks a directory tree in the background.
type FileScannerImpl struct{}

// Run walks root and streams every regular file whose extension is in
// exts (lowercase, dot included) over the returned channel. The walk
// runs in its own goroutine and closes the channel when finished.
// Unreadable entries are logged and skipped; dot-directories are not
// descended into.
func (FileScannerImpl) Run(root string, exts map[string]bool, log *slog.Logger) <-chan FileItem {
	out := make(chan FileItem, 64)
	go func() {
		defer close(out)
		count := 0
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn("skipping unreadable entry", "path", path, "err", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			if !exts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			out <- FileItem{Path: path}
			count++
			return nil
		})
		if err != nil {
			log.Error("scan aborted", "root", root, "err", err)
			return
		}
		log.Info("scan complete", "root", root, "files", count)
	}()
	return out
}
