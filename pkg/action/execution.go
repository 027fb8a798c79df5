package action

import (
	"context"
	"fmt"
	"log"
	"maps"
	"time"

	"github.com/google/uuid"
)

// SummaryKey is the export holding a run's one-line outcome
const SummaryKey = "$summary"

// Execution is the per-run context handed to Action.Run
type Execution struct {
	ID      uuid.UUID
	exports map[string]any
}

// NewExecution creates an execution with a fresh run id
func NewExecution() *Execution {
	return &Execution{
		ID:      uuid.New(),
		exports: make(map[string]any),
	}
}

// Export records a named value for the host
func (e *Execution) Export(name string, value any) {
	e.exports[name] = value
}

// Summary returns the exported summary, or "" when none was set
func (e *Execution) Summary() string {
	s, _ := e.exports[SummaryKey].(string)
	return s
}

// Exports returns a copy of every exported value
func (e *Execution) Exports() map[string]any {
	return maps.Clone(e.exports)
}

// Result is the outcome of one invocation
type Result struct {
	ID       uuid.UUID      `json:"id"`
	Summary  string         `json:"summary"`
	Exports  map[string]any `json:"exports"`
	Response any            `json:"response"`
}

// Invoke runs a with values the way the host does. Defaults are applied and
// required props checked, then values are coerced to their prop types and
// narrowed to the schema. The raw response is returned with the exports
func Invoke(ctx context.Context, a Action, values Values) (*Result, error) {
	def := a.Definition()
	props := Schema(a, values)

	values = values.Clone()
	names := make([]string, 0, len(props))
	var missing []string
	for _, p := range props {
		names = append(names, p.Name)
		if !values.IsSet(p.Name) && p.Default != nil {
			values[p.Name] = p.Default
		}
		if !values.IsSet(p.Name) {
			if p.Required() {
				missing = append(missing, p.Name)
			}
			continue
		}

		coerced, err := coerce(p, values)
		if err != nil {
			return nil, err
		}
		values[p.Name] = coerced
	}
	if len(missing) > 0 {
		return nil, &MissingPropError{Props: missing}
	}

	exec := NewExecution()
	start := time.Now()
	log.Printf("[ACTION]: run %s started for %s", exec.ID, def.Key)

	response, err := a.Run(ctx, exec, values.Only(names...))
	if err != nil {
		log.Printf("[ACTION]: run %s for %s failed after %s: %v", exec.ID, def.Key, time.Since(start), err)
		return nil, err
	}

	log.Printf("[ACTION]: run %s for %s finished in %s: %s", exec.ID, def.Key, time.Since(start), exec.Summary())

	return &Result{
		ID:       exec.ID,
		Summary:  exec.Summary(),
		Exports:  exec.Exports(),
		Response: response,
	}, nil
}

// coerce converts the value of p to the Go type matching its prop type
func coerce(p Prop, values Values) (any, error) {
	switch p.Type {
	case PropTypeString:
		return values.String(p.Name), nil
	case PropTypeInteger:
		n, ok := values.Int(p.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidProp, p.Name)
		}
		return n, nil
	case PropTypeStringArray:
		return values.Strings(p.Name), nil
	}
	return values[p.Name], nil
}
