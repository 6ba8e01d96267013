package schema

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/dmitrymomot/fieldrules/pkg/fieldrule"
)

// Field is a string field of an entity together with its rules.
type Field struct {
	Name  string
	Rules []*fieldrule.StringEnum
}

// StringField declares a string field guarded by rules.
func StringField(name string, rules ...*fieldrule.StringEnum) Field {
	return Field{Name: name, Rules: rules}
}

// Entity is the declared shape of one data-model entity.
type Entity struct {
	Name   string
	Fields []Field
}

func NewEntity(name string, fields ...Field) Entity {
	return Entity{Name: name, Fields: fields}
}

// Field looks up a field by name.
func (e Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// BoundRule is a rule attached to a named field.
type BoundRule struct {
	Field string
	Rule  *fieldrule.StringEnum
}

// RulesAt returns the rules evaluated at stage, in declaration order.
func (e Entity) RulesAt(stage fieldrule.Stage) []BoundRule {
	var out []BoundRule
	for _, f := range e.Fields {
		for _, r := range f.Rules {
			if r.AppliesAt(stage) {
				out = append(out, BoundRule{Field: f.Name, Rule: r})
			}
		}
	}
	return out
}

// Stages returns the distinct stages named by the entity's rules.
func (e Entity) Stages() []fieldrule.Stage {
	var stages []fieldrule.Stage
	for _, f := range e.Fields {
		for _, r := range f.Rules {
			if !slices.Contains(stages, r.Stage()) {
				stages = append(stages, r.Stage())
			}
		}
	}
	return stages
}

// Validate checks the declaration itself, reporting every problem found.
func (e Entity) Validate() error {
	if e.Name == "" {
		return ErrEmptyEntityName
	}

	var merr *multierror.Error
	seen := make(map[string]bool, len(e.Fields))
	for i, f := range e.Fields {
		if f.Name == "" {
			merr = multierror.Append(merr, fieldrule.NewDeclarationError(
				fmt.Sprintf("%s.fields[%d]", e.Name, i), ErrEmptyFieldName))
			continue
		}

		path := e.Name + "." + f.Name
		if seen[f.Name] {
			merr = multierror.Append(merr, fieldrule.NewDeclarationError(path, ErrDuplicateField))
		}
		seen[f.Name] = true

		for _, r := range f.Rules {
			if r == nil {
				merr = multierror.Append(merr, fieldrule.NewDeclarationError(path, ErrNilRule))
			}
		}
	}

	return merr.ErrorOrNil()
}

func (e Entity) clone() Entity {
	fields := make([]Field, len(e.Fields))
	for i, f := range e.Fields {
		fields[i] = Field{Name: f.Name, Rules: slices.Clone(f.Rules)}
	}
	return Entity{Name: e.Name, Fields: fields}
}
