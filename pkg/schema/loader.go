package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldrules/pkg/fieldrule"
)

type document struct {
	Entities []entityDecl `yaml:"entities"`
}

type entityDecl struct {
	Name   string      `yaml:"name"`
	Fields []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name string    `yaml:"name"`
	Type string    `yaml:"type"`
	Rule *ruleDecl `yaml:"enumeratedStringRule"`
}

type ruleDecl struct {
	AllowedValues []string `yaml:"allowedValues"`
	Message       string   `yaml:"message"`
	Stage         string   `yaml:"stage"`
}

// ruleKey is the field key that attaches an enumerated string rule.
const ruleKey = "enumeratedStringRule"

// fieldKeys mirrors document with raw field mappings, so a rule key declared
// with a null value can be told apart from an absent one.
type fieldKeys struct {
	Entities []struct {
		Fields []map[string]any `yaml:"fields"`
	} `yaml:"entities"`
}

func (k fieldKeys) declaresRule(entity, field int) bool {
	if entity >= len(k.Entities) || field >= len(k.Entities[entity].Fields) {
		return false
	}
	_, ok := k.Entities[entity].Fields[field][ruleKey]
	return ok
}

// decodeStrict decodes content into out, rejecting keys out does not declare.
func decodeStrict(content []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Load parses YAML declarations into entities. Every invalid declaration is
// reported; no entities are returned unless all of them are valid.
func Load(ctx context.Context, content []byte) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var doc document
	if err := decodeStrict(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	var keys fieldKeys
	if err := yaml.Unmarshal(content, &keys); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	var merr *multierror.Error
	entities := make([]Entity, 0, len(doc.Entities))
	for i, ed := range doc.Entities {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if ed.Name == "" {
			merr = multierror.Append(merr, fmt.Errorf("entities[%d]: %w", i, ErrEmptyEntityName))
			continue
		}

		e := Entity{Name: ed.Name, Fields: make([]Field, 0, len(ed.Fields))}
		for j, fd := range ed.Fields {
			f, err := buildField(ed.Name, fd, keys.declaresRule(i, j))
			if err != nil {
				merr = multierror.Append(merr, err)
				continue
			}
			e.Fields = append(e.Fields, f)
		}
		if err := e.Validate(); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		entities = append(entities, e)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, errors.Join(ErrInvalidDeclarations, err)
	}
	return entities, nil
}

// LoadFile reads and parses the declarations stored at path.
func LoadFile(ctx context.Context, path string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Load(ctx, content)
}

// LoadFile parses path and registers every entity it declares.
func (r *Registry) LoadFile(ctx context.Context, path string) error {
	entities, err := LoadFile(ctx, path)
	if err != nil {
		return err
	}
	return r.RegisterAll(entities...)
}

func buildField(entity string, fd fieldDecl, declared bool) (Field, error) {
	if fd.Name == "" {
		return Field{}, fieldrule.NewDeclarationError(entity, ErrEmptyFieldName)
	}

	path := entity + "." + fd.Name
	f := Field{Name: fd.Name}
	if fd.Rule == nil && !declared {
		return f, nil
	}
	if fd.Type != "" && fd.Type != "string" {
		return Field{}, fieldrule.NewDeclarationError(path, fmt.Errorf("%w: got %q", ErrUnsupportedType, fd.Type))
	}
	if fd.Rule == nil {
		return Field{}, fieldrule.NewDeclarationError(path, fieldrule.ErrEmptyAllowedValues)
	}

	rule, err := fieldrule.New(fd.Rule.AllowedValues,
		fieldrule.WithMessage(fd.Rule.Message),
		fieldrule.WithStage(fieldrule.Stage(fd.Rule.Stage)),
	)
	if err != nil {
		var declErr *fieldrule.DeclarationError
		if errors.As(err, &declErr) {
			err = declErr.Err
		}
		return Field{}, fieldrule.NewDeclarationError(path, err)
	}

	f.Rules = append(f.Rules, rule)
	return f, nil
}
