package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/tree"
)

type mockParser struct {
	parseFunc func(data []byte) (*tree.Node, error)
}

func (m *mockParser) Parse(data []byte) (*tree.Node, error) {
	return m.parseFunc(data)
}

type mockDataFetcher struct {
	fetchFunc func() ([]byte, error)
}

func (m *mockDataFetcher) Fetch() ([]byte, error) {
	return m.fetchFunc()
}

type mockValidator struct {
	validateFunc func(node *tree.Node, fillDefaults bool) error
}

func (m *mockValidator) Validate(node *tree.Node, fillDefaults bool) error {
	return m.validateFunc(node, fillDefaults)
}

func staticFetcher() *mockDataFetcher {
	return &mockDataFetcher{
		fetchFunc: func() ([]byte, error) {
			return []byte("data"), nil
		},
	}
}

// document builds api/host=example.com.
func document(t *testing.T) *tree.Node {
	t.Helper()

	doc := tree.New()

	_, err := doc.Put("api/host", scalar.String("example.com"))
	if err != nil {
		t.Fatalf("building document: %v", err)
	}

	return doc
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	doc := document(t)
	parser := &mockParser{
		parseFunc: func(data []byte) (*tree.Node, error) {
			if string(data) != "data" {
				return nil, errors.New("unexpected data")
			}

			return doc, nil
		},
	}

	result, err := Provider("", nil)(parser, staticFetcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != doc {
		t.Error("expected result to be the parsed document")
	}

	if result.RootPath() != "" {
		t.Errorf("expected empty root path, got %q", result.RootPath())
	}
}

func TestProvider_SelectsPath(t *testing.T) {
	t.Parallel()

	parser := &mockParser{
		parseFunc: func(_ []byte) (*tree.Node, error) {
			return document(t), nil
		},
	}

	result, err := Provider("api", nil)(parser, staticFetcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RootPath() != "api" {
		t.Errorf("expected root path 'api', got %q", result.RootPath())
	}

	host, err := tree.Get[string](result, "host")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if host != "example.com" {
		t.Errorf("expected host to be 'example.com', got %q", host)
	}

	_, err = Provider("missing", nil)(parser, staticFetcher())
	if !errors.Is(err, tree.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestProvider_FillsDefaultsOnCopy(t *testing.T) {
	t.Parallel()

	doc := document(t)
	parser := &mockParser{
		parseFunc: func(_ []byte) (*tree.Node, error) {
			return doc, nil
		},
	}

	validator := &mockValidator{
		validateFunc: func(node *tree.Node, fillDefaults bool) error {
			if !fillDefaults {
				return errors.New("expected fillDefaults")
			}

			_, err := node.Put("port", scalar.Int(8080))

			return err
		},
	}

	result, err := Provider("api", validator)(parser, staticFetcher())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	port, err := tree.Get[int](result, "port")
	if err != nil || port != 8080 {
		t.Errorf("expected default port 8080, got %d (%v)", port, err)
	}

	if result.RootPath() != "api" {
		t.Errorf("expected root path to survive the copy, got %q", result.RootPath())
	}

	if doc.Child("api").Child("port") != nil {
		t.Error("expected the parsed document to stay untouched")
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name         string
		fetchFunc    func() ([]byte, error)
		parseFunc    func(data []byte) (*tree.Node, error)
		validateFunc func(node *tree.Node, fillDefaults bool) error
		wantErr      error
	}{
		{
			name: "fetch error",
			fetchFunc: func() ([]byte, error) {
				return nil, fetchErr
			},
			wantErr: fetchErr,
		},
		{
			name: "parse error",
			parseFunc: func(_ []byte) (*tree.Node, error) {
				return nil, parseErr
			},
			wantErr: parseErr,
		},
		{
			name: "validation error",
			validateFunc: func(node *tree.Node, _ bool) error {
				_, _ = node.Put("half", scalar.Bool(true))

				return validationErr
			},
			wantErr: validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			doc := document(t)

			fetcher := staticFetcher()
			if testInfo.fetchFunc != nil {
				fetcher.fetchFunc = testInfo.fetchFunc
			}

			parser := &mockParser{parseFunc: func(_ []byte) (*tree.Node, error) { return doc, nil }}
			if testInfo.parseFunc != nil {
				parser.parseFunc = testInfo.parseFunc
			}

			validator := &mockValidator{validateFunc: func(*tree.Node, bool) error { return nil }}
			if testInfo.validateFunc != nil {
				validator.validateFunc = testInfo.validateFunc
			}

			result, err := Provider("api", validator)(parser, fetcher)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}

			if doc.Child("api").Child("half") != nil {
				t.Error("failed validation must not leak into the document")
			}
		})
	}
}
