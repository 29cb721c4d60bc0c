package validation

import (
	"reflect"
	"sync"
)

// Rule is the declarative validation rule of one struct field.
type Rule struct {
	// Field is the form key (the `form` tag, or the lowercased field name).
	Field string
	// Label is the human-readable name used in messages (the `label` tag).
	Label string
	// Tag is the validator rule string (the `validate` tag). Empty means the
	// field is always valid.
	Tag string
	// StructTag is the full tag, for callers that read extra keys.
	StructTag reflect.StructTag
}

var ruleCache sync.Map // map[reflect.Type][]Rule

// RulesOf returns the rules declared on the exported fields of v's struct
// type, in declaration order. It returns nil for non-struct values.
func RulesOf(v any) []Rule {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	return rulesOfType(t)
}

// FieldNames returns the form keys of rules, in order.
func FieldNames(rules []Rule) []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Field)
	}
	return names
}

func rulesOfType(t reflect.Type) []Rule {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	if cached, ok := ruleCache.Load(t); ok {
		return cached.([]Rule)
	}

	rules := make([]Rule, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}

		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}

		rules = append(rules, Rule{
			Field:     name,
			Label:     label,
			Tag:       field.Tag.Get("validate"),
			StructTag: field.Tag,
		})
	}

	actual, _ := ruleCache.LoadOrStore(t, rules)
	return actual.([]Rule)
}

func rulesByField(t reflect.Type) map[string]Rule {
	if t == nil {
		return nil
	}
	rules := rulesOfType(t)
	out := make(map[string]Rule, len(rules))
	for _, r := range rules {
		out[r.Field] = r
	}
	return out
}
