package item

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Def is a YAML item definition used to build starting kit items.
type Def struct {
	ID          string `yaml:"id" validate:"required,slug"`
	Kind        Kind   `yaml:"kind" validate:"required,oneof=weapon potion"`
	Name        string `yaml:"name" validate:"required,max=64"`
	Description string `yaml:"description" validate:"max=256"`
	Quantity    int    `yaml:"quantity" validate:"min=1"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks that the Def satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid; otherwise the error names every invalid field.
func (d *Def) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("item validation failed: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("item validation failed: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must not be empty"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s; got %q", fe.Field(), fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "slug":
		return fmt.Sprintf("%s must be lowercase letters, digits, '-' or '_'; got %q", fe.Field(), fe.Value())
	default:
		return fe.Field() + " is invalid"
	}
}

// Build creates a fresh Item instance from the definition.
//
// Precondition: d.Validate() returns nil.
// Postcondition: each call returns a distinct instance with a new ID.
func (d *Def) Build() (Item, error) {
	return New(d.Kind, d.Name, d.Description)
}

// LoadDefs reads all *.yaml and *.yml files from dir, parses each as a Def,
// validates it, and returns them sorted by file name.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Defs or the first encountered error.
func LoadDefs(dir string) ([]*Def, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadDefs: cannot read directory %q: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var defs []*Def
	seen := make(map[string]string)
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot read file %q: %w", path, err)
		}
		d := Def{Quantity: 1}
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadDefs: cannot parse file %q: %w", path, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadDefs: invalid item in %q: %w", path, err)
		}
		if prev, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("LoadDefs: item ID %q defined in both %q and %q", d.ID, prev, path)
		}
		seen[d.ID] = path
		defs = append(defs, &d)
	}
	return defs, nil
}
