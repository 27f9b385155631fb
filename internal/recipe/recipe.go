// Package recipe runs YAML-described cleaning pipelines: an ordered
// list of steps, each naming a cleaning operation and its parameters.
// The whole recipe is validated before the first step mutates anything.
package recipe

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/clean"
)

// Step actions.
const (
	ActionDedup     = "dedup"
	ActionMissing   = "missing"
	ActionOutliers  = "outliers"
	ActionDummies   = "dummies"
	ActionNormalize = "normalize"
	ActionConvert   = "convert"
	ActionAutoClean = "autoclean"
)

var (
	ErrEmptyRecipe   = errors.New("recipe: no steps")
	ErrUnknownAction = errors.New("recipe: unknown action")
	ErrInvalidStep   = errors.New("recipe: invalid step")
)

type Step struct {
	Action    string            `yaml:"action"`
	Keep      string            `yaml:"keep,omitempty"`
	Method    string            `yaml:"method,omitempty"`
	Columns   []string          `yaml:"columns,omitempty"`
	Strategy  map[string]string `yaml:"strategy,omitempty"`
	Mapping   map[string]string `yaml:"mapping,omitempty"`
	DropFirst bool              `yaml:"drop_first,omitempty"`
}

type Recipe struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

type StepResult struct {
	Action string `json:"action"`
	Result any    `json:"result"`
}

// Load reads and validates a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates recipe YAML.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks every step's action and parameters so a bad recipe
// fails before any step has run.
func (r *Recipe) Validate() error {
	if len(r.Steps) == 0 {
		return ErrEmptyRecipe
	}
	for i, step := range r.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Action {
	case ActionDedup:
		if s.Keep != "" && s.Keep != clean.KeepFirst && s.Keep != clean.KeepLast {
			return fmt.Errorf("%w: keep must be first or last, got %q", ErrInvalidStep, s.Keep)
		}
	case ActionMissing:
		if len(s.Strategy) == 0 {
			return fmt.Errorf("%w: missing step needs a strategy map", ErrInvalidStep)
		}
	case ActionOutliers:
		if s.Method != clean.OutlierIQR && s.Method != clean.OutlierZScore {
			return fmt.Errorf("%w: outliers method must be iqr or zscore, got %q", ErrInvalidStep, s.Method)
		}
	case ActionDummies:
	case ActionNormalize:
		if s.Method != clean.ScaleStandard && s.Method != clean.ScaleMinMax {
			return fmt.Errorf("%w: normalize method must be standard or minmax, got %q", ErrInvalidStep, s.Method)
		}
	case ActionConvert:
		if len(s.Mapping) == 0 {
			return fmt.Errorf("%w: convert step needs a mapping", ErrInvalidStep)
		}
	case ActionAutoClean:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, s.Action)
	}
	return nil
}

// Run executes the steps in order against the cleaner. The first
// failing step stops the run; completed steps stay applied, matching
// the behavior of issuing the same operations by hand.
func (r *Recipe) Run(c *clean.Cleaner) ([]StepResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	results := make([]StepResult, 0, len(r.Steps))
	for i, step := range r.Steps {
		result, err := step.run(c)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		results = append(results, StepResult{Action: step.Action, Result: result})
	}
	return results, nil
}

func (s Step) run(c *clean.Cleaner) (any, error) {
	switch s.Action {
	case ActionDedup:
		keep := s.Keep
		if keep == "" {
			keep = clean.KeepFirst
		}
		return c.RemoveDuplicates(keep)
	case ActionMissing:
		return c.HandleMissing(s.Strategy)
	case ActionOutliers:
		return c.HandleOutliers(s.Method, s.Columns)
	case ActionDummies:
		return c.DummyEncode(s.Columns, s.DropFirst)
	case ActionNormalize:
		return c.Normalize(s.Columns, s.Method)
	case ActionConvert:
		return c.ConvertTypes(s.Mapping)
	case ActionAutoClean:
		return c.AutoClean()
	default:
		return nil, ErrUnknownAction
	}
}
