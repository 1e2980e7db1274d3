package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	carderrors "github.com/alexisbeaulieu97/moviecard/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadMovie reads a movie record from a YAML file on disk and validates it.
func LoadMovie(path string) (moviecard.MovieCardData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return moviecard.MovieCardData{}, carderrors.NewParseError(path, 0, err)
	}
	return ParseMovie(path, data)
}

// ParseMovie decodes and validates a movie record. Unknown keys are rejected.
// path is only used to label errors.
func ParseMovie(path string, data []byte) (moviecard.MovieCardData, error) {
	var movie moviecard.MovieCardData

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&movie); err != nil {
		if errors.Is(err, io.EOF) {
			return moviecard.MovieCardData{}, carderrors.NewParseError(path, 0, errors.New("movie file is empty"))
		}
		return moviecard.MovieCardData{}, carderrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateMovie(&movie); err != nil {
		return moviecard.MovieCardData{}, err
	}

	return movie, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
