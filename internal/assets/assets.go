// Package assets resolves opaque image resource identifiers to embedded text art.
package assets

import (
	"embed"
	"errors"
	"path"
	"sort"
	"strings"

	carderrors "github.com/alexisbeaulieu97/moviecard/pkg/errors"
)

// Built-in resource identifiers.
const (
	DeadpoolPoster = "deadpool2016"
	StarRate       = "baseline_star_rate_24"
)

//go:embed art/*.txt
var art embed.FS

// Asset is one embedded image resource.
type Asset struct {
	ID  string
	Art string
}

// Glyph returns the first line of the art, used for single-cell icons.
func (a Asset) Glyph() string {
	line, _, _ := strings.Cut(a.Art, "\n")
	return line
}

// Lookup returns the asset for id. Unknown identifiers yield an *errors.AssetError.
func Lookup(id string) (Asset, error) {
	if id == "" || strings.ContainsAny(id, "/\\.") {
		return Asset{}, carderrors.NewAssetError(id, nil)
	}

	data, err := art.ReadFile(path.Join("art", id+".txt"))
	if err != nil {
		return Asset{}, carderrors.NewAssetError(id, nil)
	}

	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return Asset{}, carderrors.NewAssetError(id, errors.New("empty art"))
	}

	return Asset{ID: id, Art: text}, nil
}

// Exists reports whether id names an embedded asset.
func Exists(id string) bool {
	_, err := Lookup(id)
	return err == nil
}

// IDs lists the embedded resource identifiers in sorted order.
func IDs() []string {
	entries, err := art.ReadDir("art")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".txt"); ok {
			ids = append(ids, name)
		}
	}
	sort.Strings(ids)
	return ids
}
