package main

import (
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/golinq/errors"
	"github.com/kbukum/golinq/validation"
)

// person is one record of a people dataset.
type person struct {
	Name string `yaml:"name" validate:"required"`
	Team string `yaml:"team"`
	Age  int    `yaml:"age" validate:"gte=0,lte=150"`
}

type dataset struct {
	People []person `yaml:"people" validate:"dive"`
}

// loadDataset reads a YAML or JSON people file. JSON documents are valid YAML,
// so a single decoder serves both.
func loadDataset(path string) ([]person, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NotFound("dataset", path).WithCause(err)
	}
	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, errors.InvalidInput("data", "cannot decode "+path).WithCause(err)
	}
	if err := validation.Validate(ds); err != nil {
		return nil, err
	}
	return ds.People, nil
}
