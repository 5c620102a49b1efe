package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir finds JSON dump files directly inside dir, newest first. A missing
// directory yields no files and no error.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []DiscoveredFile
	for _, d := range entries {
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".json") {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		files = append(files, DiscoveredFile{
			Path:    filepath.Join(dir, d.Name()),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Path > files[j].Path
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// Resolve returns path itself when it is a file, or the newest dump inside
// it when it is a directory.
func Resolve(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}
	files, err := ScanDir(path)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", &os.PathError{Op: "resolve", Path: path, Err: os.ErrNotExist}
	}
	return files[0].Path, nil
}
