package action

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoAction returns its values and adds a "detail" prop when mode is "long"
type echoAction struct {
	optionCalls int
	optionErr   error
}

func (e *echoAction) Definition() Definition {
	return Definition{
		Key:     "test-echo",
		Name:    "Echo",
		Version: "0.0.1",
		Type:    TypeAction,
		Props: []Prop{
			{Name: "app", Type: PropTypeApp, App: "test"},
			{Name: "mode", Type: PropTypeString, Options: StringOptions("short", "long"), ReloadProps: true},
			{Name: "color", Type: PropTypeString, Optional: true, Default: "blue"},
			{Name: "count", Type: PropTypeInteger, Optional: true},
			{Name: "tags", Type: PropTypeStringArray, Optional: true},
			{
				Name: "owner",
				Type: PropTypeString,
				OptionsFunc: func(ctx context.Context, values Values) ([]Option, error) {
					e.optionCalls++
					if e.optionErr != nil {
						return nil, e.optionErr
					}
					return []Option{{Label: "Ada", Value: "1"}}, nil
				},
			},
		},
	}
}

func (e *echoAction) AdditionalProps(values Values) []Prop {
	if values.String("mode") != "long" {
		return nil
	}
	return []Prop{{Name: "detail", Type: PropTypeString}}
}

func (e *echoAction) Run(ctx context.Context, exec *Execution, values Values) (any, error) {
	exec.Export(SummaryKey, "echoed "+values.String("mode"))
	return map[string]any(values), nil
}

func propNames(props []Prop) []string {
	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Name)
	}
	return names
}

func TestSchema(t *testing.T) {
	a := &echoAction{}

	tests := []struct {
		name     string
		values   Values
		expected []string
	}{
		{"no values", Values{}, []string{"app", "mode", "color", "count", "tags", "owner"}},
		{"short mode", Values{"mode": "short"}, []string{"app", "mode", "color", "count", "tags", "owner"}},
		{"long mode", Values{"mode": "long"}, []string{"app", "mode", "color", "count", "tags", "owner", "detail"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Schema(a, tt.values)
			assert.Equal(t, tt.expected, propNames(props))
		})
	}

	props := Schema(a, Values{})
	assert.True(t, props[5].RemoteOptions)
	assert.False(t, props[1].RemoteOptions)
	assert.Zero(t, a.optionCalls, "schema must not load options")
}

func TestResolve(t *testing.T) {
	a := &echoAction{}

	props, err := Resolve(context.Background(), a, Values{})
	require.NoError(t, err)
	assert.Equal(t, []Option{{Label: "Ada", Value: "1"}}, props[5].Options)
	assert.Equal(t, 1, a.optionCalls)

	a.optionErr = errors.New("upstream down")
	_, err = Resolve(context.Background(), a, Values{})
	assert.ErrorIs(t, err, a.optionErr)
}

func TestResolveOptions(t *testing.T) {
	a := &echoAction{}
	ctx := context.Background()

	t.Run("static options", func(t *testing.T) {
		options, err := ResolveOptions(ctx, a, Values{}, "mode")
		require.NoError(t, err)
		assert.Equal(t, StringOptions("short", "long"), options)
	})

	t.Run("dynamic options", func(t *testing.T) {
		options, err := ResolveOptions(ctx, a, Values{}, "owner")
		require.NoError(t, err)
		assert.Len(t, options, 1)
	})

	t.Run("prop without options", func(t *testing.T) {
		options, err := ResolveOptions(ctx, a, Values{}, "color")
		require.NoError(t, err)
		assert.NotNil(t, options)
		assert.Empty(t, options)
	})

	t.Run("additional prop", func(t *testing.T) {
		_, err := ResolveOptions(ctx, a, Values{"mode": "long"}, "detail")
		assert.NoError(t, err)
	})

	t.Run("unknown prop", func(t *testing.T) {
		_, err := ResolveOptions(ctx, a, Values{}, "detail")
		assert.ErrorIs(t, err, ErrUnknownProp)
	})
}

func TestInvoke(t *testing.T) {
	a := &echoAction{}
	ctx := context.Background()

	t.Run("applies defaults and narrows values", func(t *testing.T) {
		result, err := Invoke(ctx, a, Values{"mode": "short", "owner": "1", "extra": "dropped"})
		require.NoError(t, err)

		assert.Equal(t, "echoed short", result.Summary)
		assert.Equal(t, "echoed short", result.Exports[SummaryKey])
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, map[string]any{"mode": "short", "owner": "1", "color": "blue"}, result.Response)
	})

	t.Run("missing required props", func(t *testing.T) {
		_, err := Invoke(ctx, a, Values{"mode": "long"})

		var missing *MissingPropError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"owner", "detail"}, missing.Props)
	})

	t.Run("coerces values to prop types", func(t *testing.T) {
		result, err := Invoke(ctx, a, Values{"mode": "long", "owner": float64(7), "detail": "d", "count": "12", "tags": []any{"a", "b"}})
		require.NoError(t, err)

		response := result.Response.(map[string]any)
		assert.Equal(t, "7", response["owner"])
		assert.Equal(t, int64(12), response["count"])
		assert.Equal(t, []string{"a", "b"}, response["tags"])
	})

	t.Run("rejects non-integer values", func(t *testing.T) {
		_, err := Invoke(ctx, a, Values{"mode": "short", "owner": "1", "count": "many"})
		assert.ErrorIs(t, err, ErrInvalidProp)
	})

	t.Run("empty string is unset", func(t *testing.T) {
		_, err := Invoke(ctx, a, Values{"mode": "", "owner": "1"})

		var missing *MissingPropError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"mode"}, missing.Props)
	})
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&echoAction{}))

	a, err := reg.Get("test-echo")
	require.NoError(t, err)
	assert.Equal(t, "Echo", a.Definition().Name)

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownAction)

	err = reg.Register(&echoAction{})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.Len(t, reg.List(), 1)
}
