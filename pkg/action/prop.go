package action

import "context"

// PropType is the semantic type of a prop value
type PropType string

const (
	PropTypeApp         PropType = "app"
	PropTypeString      PropType = "string"
	PropTypeInteger     PropType = "integer"
	PropTypeStringArray PropType = "string[]"
)

// Option is one selectable value of a prop
type Option struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// OptionsFunc produces a prop's option list from the current values. It
// returns an empty list, never an error, when upstream has no data
type OptionsFunc func(ctx context.Context, values Values) ([]Option, error)

// StringOptions builds options whose label and value are the same string
func StringOptions(values ...string) []Option {
	options := make([]Option, 0, len(values))
	for _, v := range values {
		options = append(options, Option{Label: v, Value: v})
	}
	return options
}

// Prop is a typed input of an action
type Prop struct {
	Name        string   `json:"name" yaml:"name"`
	Type        PropType `json:"type" yaml:"type"`
	App         string   `json:"app,omitempty" yaml:"app,omitempty"`
	Label       string   `json:"label,omitempty" yaml:"label,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Optional    bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`

	// Static options. Ignored when OptionsFunc is set
	Options     []Option    `json:"options,omitempty" yaml:"options,omitempty"`
	OptionsFunc OptionsFunc `json:"-" yaml:"-"`

	// RemoteOptions marks props whose options come from OptionsFunc
	RemoteOptions bool `json:"remoteOptions,omitempty" yaml:"remoteOptions,omitempty"`

	// ReloadProps asks the host to recompute the schema when this prop changes
	ReloadProps bool `json:"reloadProps,omitempty" yaml:"reloadProps,omitempty"`
}

// Required reports whether the host must collect a value before running
func (p Prop) Required() bool {
	return !p.Optional && p.Type != PropTypeApp
}
