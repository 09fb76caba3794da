package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/relayout/pkg/types"
)

// ListFiles returns every regular file below root as a slash-separated path
// relative to root, in lexical order. Directories are descended into;
// symlinks and other special files are skipped.
func ListFiles(fsys types.FS, root string) ([]string, error) {
	var files []string
	if err := listInto(fsys, root, "", &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func listInto(fsys types.FS, root, rel string, files *[]string) error {
	entries, err := fsys.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		childRel := entry.Name()
		if rel != "" {
			childRel = rel + "/" + entry.Name()
		}

		switch {
		case entry.IsDir():
			if err := listInto(fsys, root, childRel, files); err != nil {
				return err
			}
		case entry.Type()&fs.ModeType == 0:
			*files = append(*files, childRel)
		}
	}
	return nil
}

// PruneEmptyDirs removes directories below and including root that contain
// no files, deepest first. It returns the removed directories.
func PruneEmptyDirs(fsys types.FS, root string) ([]string, error) {
	var removed []string
	_, err := prune(fsys, root, &removed)
	return removed, err
}

// prune reports whether dir was removed.
func prune(fsys types.FS, dir string, removed *[]string) (bool, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return false, err
	}

	remaining := len(entries)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		gone, err := prune(fsys, filepath.Join(dir, entry.Name()), removed)
		if err != nil {
			return false, err
		}
		if gone {
			remaining--
		}
	}

	if remaining > 0 {
		return false, nil
	}
	if err := fsys.Remove(dir); err != nil {
		return false, err
	}
	*removed = append(*removed, dir)
	return true, nil
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}
