package descriptor

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	gojson "github.com/goccy/go-json"
)

// ValidationError is the single error kind raised when a value does not match
// its expected descriptor. The union rule is the only place these are caught
// and suppressed; everywhere else a failing nested validation aborts the whole
// outer validation.
type ValidationError struct {
	Token Token  // the expected descriptor
	Value any    // the offending value
	Key   string // offending property/map key, when known
}

func (e *ValidationError) Error() string {
	where := ""
	if e.Key != "" {
		where = fmt.Sprintf(" for key %q", e.Key)
	}
	return fmt.Sprintf("invalid value%s: expected %s, got %s",
		where, Describe(e.Token), describeValue(e.Value))
}

func describeValue(v any) string {
	if _, ok := v.(undefinedValue); ok {
		return "undefined"
	}
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// undefinedValue stands for an absent object key. It never escapes Validate:
// properties that validate to undefined are omitted from the output.
type undefinedValue struct{}

// Validate interprets tok against v and returns the validated value: identity
// for scalars, a rebuilt sequence/structure of validated elements otherwise.
// Values are expected in the shape a JSON decoder produces (map[string]any,
// []any, float64 or json.Number, string, bool, nil).
func (t *Table) Validate(tok Token, v any) (any, error) {
	return t.validate(tok, v, "")
}

// ValidateNamed validates v against a declared type by name.
func (t *Table) ValidateNamed(name string, v any) (any, error) {
	return t.validate(Ref{Name: name}, v, "")
}

func (t *Table) validate(tok Token, v any, key string) (any, error) {
	// Dereference through named types; each step consumes one token, so
	// self-referential types cannot loop here.
	for {
		ref, ok := tok.(Ref)
		if !ok {
			break
		}
		decl, ok := t.decls[ref.Name]
		if !ok {
			return nil, &ValidationError{Token: ref, Value: v, Key: key}
		}
		tok = decl
	}

	switch tk := tok.(type) {
	case Prim:
		return validatePrim(tk, v, key)
	case *Enum:
		if s, ok := v.(string); ok {
			for _, c := range tk.Cases {
				if s == c {
					return v, nil
				}
			}
		}
		return nil, &ValidationError{Token: tk, Value: v, Key: key}
	case *Union:
		for _, m := range tk.Members {
			if out, err := t.validate(m, v, key); err == nil {
				return out, nil
			}
		}
		return nil, &ValidationError{Token: tk, Value: v, Key: key}
	case *Array:
		vs, ok := v.([]any)
		if !ok {
			return nil, &ValidationError{Token: tk, Value: v, Key: key}
		}
		out := make([]any, len(vs))
		for i, el := range vs {
			res, err := t.validate(tk.Item, el, key)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	case *Map:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &ValidationError{Token: tk, Value: v, Key: key}
		}
		out := make(map[string]any, len(m))
		for _, k := range sortedKeys(m) {
			res, err := t.validate(tk.Values, m[k], k)
			if err != nil {
				return nil, err
			}
			out[k] = res
		}
		return out, nil
	case *Object:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, &ValidationError{Token: tk, Value: v, Key: key}
		}
		out := make(map[string]any, len(m))
		declared := make(map[string]struct{}, len(tk.Props))
		// Declared properties first, in declared order. Absence flows through
		// as undefined; required-versus-optional is already encoded in the
		// property token, so there is no separate missing-key check.
		for _, p := range tk.Props {
			declared[p.Key] = struct{}{}
			pv, present := m[p.Key]
			in := pv
			if !present {
				in = undefinedValue{}
			}
			res, err := t.validate(p.Token, in, p.Key)
			if err != nil {
				return nil, err
			}
			if _, absent := res.(undefinedValue); !absent {
				out[p.Key] = res
			}
		}
		for _, k := range sortedKeys(m) {
			if _, ok := declared[k]; ok {
				continue
			}
			res, err := t.validate(tk.Additional, m[k], k)
			if err != nil {
				return nil, err
			}
			out[k] = res
		}
		return out, nil
	}
	return nil, &ValidationError{Token: tok, Value: v, Key: key}
}

func validatePrim(p Prim, v any, key string) (any, error) {
	fail := func() (any, error) {
		return nil, &ValidationError{Token: p, Value: v, Key: key}
	}
	switch p.K {
	case TokAny:
		return v, nil
	case TokNull:
		if v == nil {
			return v, nil
		}
		return fail()
	case TokUndefined:
		if _, ok := v.(undefinedValue); ok {
			return v, nil
		}
		return fail()
	case TokNever, TokNoExtra:
		return fail()
	case TokBool:
		if _, ok := v.(bool); ok {
			return v, nil
		}
		return fail()
	case TokString:
		if _, ok := v.(string); ok {
			return v, nil
		}
		return fail()
	case TokInteger:
		if isNumber(v) && isIntegral(v) {
			return v, nil
		}
		return fail()
	case TokDouble:
		if isNumber(v) {
			return v, nil
		}
		return fail()
	}
	return fail()
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case float64, int, int64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	default:
		return false
	}
}

func isIntegral(v any) bool {
	switch n := v.(type) {
	case int, int64:
		return true
	case float64:
		return !math.IsInf(n, 0) && !math.IsNaN(n) && math.Trunc(n) == n
	case json.Number:
		_, err := n.Int64()
		return err == nil
	default:
		return false
	}
}

// sortedKeys gives a deterministic iteration order for undeclared/map keys so
// the first reported failure is stable across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
