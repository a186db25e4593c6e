package models

import "fmt"

type PackageFile struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

type Package struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Files       []PackageFile `json:"files"`
}

// ParsePackages validates the body of GET packages, `{"packages": [...]}`.
// One bad element rejects the whole response.
func ParsePackages(data []byte) ([]Package, error) {
	obj, err := object(data)
	if err != nil {
		return nil, err
	}
	raw, err := arrayField(obj, "packages")
	if err != nil {
		return nil, err
	}

	out := make([]Package, 0, len(raw))
	for i, item := range raw {
		pkg, err := parsePackage(item)
		if err != nil {
			return nil, fmt.Errorf("packages[%d]: %w", i, err)
		}
		out = append(out, pkg)
	}
	return out, nil
}

func parsePackage(v any) (Package, error) {
	obj, err := asObject(v)
	if err != nil {
		return Package{}, err
	}
	f, err := stringFields(obj, "name", "description", "version")
	if err != nil {
		return Package{}, err
	}
	rawFiles, err := arrayField(obj, "files")
	if err != nil {
		return Package{}, err
	}

	files := make([]PackageFile, 0, len(rawFiles))
	for _, rf := range rawFiles {
		fobj, err := asObject(rf)
		if err != nil {
			return Package{}, err
		}
		ff, err := stringFields(fobj, "name", "path", "content")
		if err != nil {
			return Package{}, err
		}
		files = append(files, PackageFile{Name: ff[0], Path: ff[1], Content: ff[2]})
	}

	return Package{Name: f[0], Description: f[1], Version: f[2], Files: files}, nil
}
