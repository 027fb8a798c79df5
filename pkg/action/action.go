package action

import (
	"context"
	"fmt"
)

// TypeAction is the component type of every action
const TypeAction = "action"

// Definition is the static identity and schema of an action
type Definition struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
	Type        string `json:"type" yaml:"type"`
	Props       []Prop `json:"props" yaml:"props"`
}

// Action is a single invocable operation exposed to the host
type Action interface {
	Definition() Definition
	Run(ctx context.Context, exec *Execution, values Values) (any, error)
}

// Reloader is implemented by actions whose schema depends on current values.
// AdditionalProps must be pure: the same values yield the same props
type Reloader interface {
	AdditionalProps(values Values) []Prop
}

// Schema returns the static props followed by any additional props derived from values
func Schema(a Action, values Values) []Prop {
	props := append([]Prop{}, a.Definition().Props...)
	if r, ok := a.(Reloader); ok {
		props = append(props, r.AdditionalProps(values)...)
	}

	for i := range props {
		props[i].RemoteOptions = props[i].OptionsFunc != nil
	}

	return props
}

// ResolveOptions returns the option list of the named prop
func ResolveOptions(ctx context.Context, a Action, values Values, name string) ([]Option, error) {
	for _, p := range Schema(a, values) {
		if p.Name == name {
			return propOptions(ctx, p, values)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownProp, name)
}

// Resolve returns the schema with every option list materialized
func Resolve(ctx context.Context, a Action, values Values) ([]Prop, error) {
	props := Schema(a, values)
	for i, p := range props {
		if p.OptionsFunc == nil {
			continue
		}

		options, err := propOptions(ctx, p, values)
		if err != nil {
			return nil, fmt.Errorf("failed to load options for %s: %w", p.Name, err)
		}
		props[i].Options = options
	}

	return props, nil
}

// propOptions calls a prop's options function, normalizing nil to an empty list
func propOptions(ctx context.Context, p Prop, values Values) ([]Option, error) {
	options := p.Options
	if p.OptionsFunc != nil {
		var err error
		if options, err = p.OptionsFunc(ctx, values); err != nil {
			return nil, err
		}
	}

	if options == nil {
		options = []Option{}
	}
	return options, nil
}
