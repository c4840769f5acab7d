package component

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
)

// -----------------------------------------------------------------------------
// I/O Specs
// -----------------------------------------------------------------------------

// InputSpec declares one component input. Type holds the authored type
// name; it stays untyped because hand-written documents can carry a
// non-string value in that position.
type InputSpec struct {
	Name        string `json:"name"                  yaml:"name"                  validate:"required"`
	Type        any    `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any    `json:"default,omitempty"     yaml:"default,omitempty"`
	Optional    bool   `json:"optional,omitempty"    yaml:"optional,omitempty"`
}

// OutputSpec declares one component output.
type OutputSpec struct {
	Name        string `json:"name"                  yaml:"name"                  validate:"required"`
	Type        any    `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// -----------------------------------------------------------------------------
// Spec
// -----------------------------------------------------------------------------

// Spec is a component specification document: the human-authored
// description of a pipeline component and its declared inputs/outputs.
type Spec struct {
	Name        string       `json:"name"                  yaml:"name"                  validate:"required"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs      []InputSpec  `json:"inputs,omitempty"      yaml:"inputs,omitempty"      validate:"dive"`
	Outputs     []OutputSpec `json:"outputs,omitempty"     yaml:"outputs,omitempty"     validate:"dive"`

	filePath string
}

func (s *Spec) FilePath() string {
	return s.filePath
}

func (s *Spec) SetFilePath(path string) {
	s.filePath = path
}

// Validate checks the structural validity of the spec.
func (s *Spec) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid component spec %q: %w", s.Name, verrs)
		}
		return fmt.Errorf("invalid component spec %q: %w", s.Name, err)
	}
	return nil
}

// Merge merges another component spec into this one, other taking precedence.
func (s *Spec) Merge(other any) error {
	otherSpec, ok := other.(*Spec)
	if !ok {
		return fmt.Errorf("failed to merge component specs: %w", errors.New("invalid type for merge"))
	}
	return mergo.Merge(s, otherSpec, mergo.WithOverride)
}

// FindInput returns the first declared input with the given name.
func (s *Spec) FindInput(name string) *InputSpec {
	for i := range s.Inputs {
		if s.Inputs[i].Name == name {
			return &s.Inputs[i]
		}
	}
	return nil
}

// FindOutput returns the first declared output with the given name.
func (s *Spec) FindOutput(name string) *OutputSpec {
	for i := range s.Outputs {
		if s.Outputs[i].Name == name {
			return &s.Outputs[i]
		}
	}
	return nil
}
