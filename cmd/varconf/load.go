package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/varconf"
	"github.com/0xalexb/varconf/config"
	filefetcher "github.com/0xalexb/varconf/config/fetcher/file"
	"github.com/0xalexb/varconf/schema"
	"github.com/0xalexb/varconf/tree"
	"github.com/0xalexb/varconf/validator"
)

var errNoSchema = errors.New("no schema given, use --schema")

// loadValidator loads the schema named by --schema. It returns errNoSchema when
// the flag is empty.
func (o *options) loadValidator() (*validator.Validator, error) {
	if o.schemaPath == "" {
		return nil, errNoSchema
	}

	data, err := os.ReadFile(o.schemaPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	schemaOptions, err := schema.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading schema %q: %w", o.schemaPath, err)
	}

	return validator.New(o.root, schemaOptions)
}

// optionalValidator is loadValidator without the requirement for --schema.
func (o *options) optionalValidator() (*validator.Validator, error) {
	v, err := o.loadValidator()
	if errors.Is(err, errNoSchema) {
		return nil, nil
	}

	return v, err
}

// load parses the data of file and selects the --root section. With a
// validator the section is validated, filling defaults per --fill-defaults.
func (o *options) load(file string, fetcher config.DataFetcher, v *validator.Validator) (*tree.Node, error) {
	parser, err := varconf.NewParser(file)
	if err != nil {
		return nil, err
	}

	var cv config.Validator
	if v != nil && o.fill {
		cv = v
	}

	node, err := config.Provider(o.root, cv)(parser, fetcher)
	if err != nil {
		return nil, err
	}

	if v != nil && !o.fill {
		err = v.Validate(node, false)
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}
	}

	return node, nil
}

func (o *options) loadFile(file string, v *validator.Validator) (*tree.Node, error) {
	fetcher, err := filefetcher.NewFetcher(file)()
	if err != nil {
		return nil, err
	}

	return o.load(file, fetcher, v)
}

// staticFetcher serves bytes that were already read.
type staticFetcher []byte

func (f staticFetcher) Fetch() ([]byte, error) {
	return f, nil
}
