package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gradients/internal/gradient"
	gradienterrors "github.com/alexisbeaulieu97/gradients/pkg/errors"
)

// BuiltinName is the path reported for the embedded dataset.
const BuiltinName = "builtin:gradients.yaml"

//go:embed defaults/gradients.yaml
var builtinDataset []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadDataset reads the dataset at path, or the built-in dataset when path is empty.
func LoadDataset(path string) (*gradient.Dataset, error) {
	if path == "" {
		return DecodeDataset(BuiltinName, builtinDataset)
	}
	return ParseDataset(path)
}

// ParseDataset loads a dataset file from disk, validates it, and returns the resulting dataset.
func ParseDataset(path string) (*gradient.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gradienterrors.NewParseError(path, 0, err)
	}
	return DecodeDataset(path, data)
}

// DecodeDataset parses raw YAML. name is only used in error messages.
func DecodeDataset(name string, data []byte) (*gradient.Dataset, error) {
	doc, err := decodeDocument(name, data)
	if err != nil {
		return nil, err
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}
	return doc.ToDataset()
}

func decodeDocument(name string, data []byte) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, gradienterrors.NewParseError(name, 0, errors.New("document is empty"))
		}
		return nil, gradienterrors.NewParseError(name, extractLine(err), err)
	}
	return &doc, nil
}

// ToDataset converts a validated document into the domain dataset.
func (d *Document) ToDataset() (*gradient.Dataset, error) {
	records := make([]gradient.Gradient, 0, len(d.Gradients))
	for i, entry := range d.Gradients {
		start, err := gradient.ParseColor(entry.Start)
		if err != nil {
			return nil, gradienterrors.NewValidationError(fieldForGradient(i, "start"), err.Error(), err)
		}
		end, err := gradient.ParseColor(entry.End)
		if err != nil {
			return nil, gradienterrors.NewValidationError(fieldForGradient(i, "end"), err.Error(), err)
		}
		records = append(records, gradient.Gradient{
			Name:  entry.Name,
			Start: start,
			End:   end,
			Tags:  entry.Tags,
		})
	}
	return gradient.NewDataset(records), nil
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
