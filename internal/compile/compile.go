// Package compile implements the schema compiler: it walks a schema value
// and produces a tree of validator nodes, resolving $ref, $id, and
// unknown-keyword promotion against a registry.Registry as it goes.
//
// Grounded on the teacher's kubeopenapi/kubeopenapi.go Import walk
// (map[string]any-driven recursive descent building a schema from a raw
// document) generalized from "import a minimal OpenAPI subset" to the
// full draft-07 per-node procedure of spec.md §4.4, and on the original
// nlohmann json-schema-validator's schema::make dispatch.
package compile

import (
	"fmt"
	"strconv"

	"github.com/reoring/jsonschema/internal/ecma"
	"github.com/reoring/jsonschema/internal/iface"
	"github.com/reoring/jsonschema/internal/node"
	"github.com/reoring/jsonschema/internal/registry"
	"github.com/reoring/jsonschema/internal/uri"
)

// Options configures a Compiler.
type Options struct {
	FormatChecker iface.FormatChecker
}

// Compiler walks schema documents and populates a registry.
type Compiler struct {
	reg  *registry.Registry
	opts Options
}

func New(reg *registry.Registry, opts Options) *Compiler {
	return &Compiler{reg: reg, opts: opts}
}

// Compile compiles schema as the document rooted at base, inserting every
// node it produces into the registry, and returns the root node.
func (c *Compiler) Compile(base uri.URI, schema any) (node.Node, error) {
	return c.compileAt(schema, nil, []uri.URI{base})
}

// compileFunc adapts Compiler.compileAt to registry.CompileFunc, used for
// promote-on-demand compilation of a stashed unknown-keyword fragment.
func (c *Compiler) compileFunc() registry.CompileFunc {
	return func(raw any, at uri.URI) (node.Node, error) {
		return c.compileAt(raw, nil, []uri.URI{at})
	}
}

// compileAt implements the per-node procedure of spec.md §4.4: compile
// fragment schema, known simultaneously by every URI in stack plus the
// additional tokens, into one Node shared by all of them.
func (c *Compiler) compileAt(schema any, tokens []string, stack []uri.URI) (node.Node, error) {
	stack = extend(stack, tokens)

	if b, ok := schema.(bool); ok {
		n := node.Boolean(b)
		if err := c.insertAll(stack, n); err != nil {
			return nil, err
		}
		return n, nil
	}

	m, ok := asObject(schema)
	if !ok {
		return nil, fmt.Errorf("jsonschema: schema at %s must be a boolean or an object, got %T", lastURI(stack), schema)
	}

	if idRaw, ok := m["$id"]; ok {
		if id, ok := idRaw.(string); ok && id != "" {
			derived := lastURI(stack).Derive(id)
			if !containsURI(stack, derived) {
				stack = append(stack, derived)
			}
		}
	}

	if defs, ok := m["definitions"].(map[string]any); ok {
		for _, name := range sortedKeys(defs) {
			if _, err := c.compileAt(defs[name], []string{"definitions", name}, stack); err != nil {
				return nil, err
			}
		}
	}

	var result node.Node
	if refRaw, ok := m["$ref"]; ok {
		ref, ok := refRaw.(string)
		if !ok {
			return nil, fmt.Errorf("jsonschema: $ref at %s must be a string", lastURI(stack))
		}
		target := lastURI(stack).Derive(ref)
		n, err := c.reg.GetOrCreateRef(target, c.compileFunc())
		if err != nil {
			return nil, err
		}
		result = n
	} else {
		n, err := c.buildTypeSchema(m, stack)
		if err != nil {
			return nil, err
		}
		result = n
	}

	if err := c.insertAll(stack, result); err != nil {
		return nil, err
	}
	if err := c.registerUnknownKeywords(m, stack); err != nil {
		return nil, err
	}
	return result, nil
}

func lastURI(stack []uri.URI) uri.URI { return stack[len(stack)-1] }

func (c *Compiler) insertAll(stack []uri.URI, n node.Node) error {
	for _, u := range stack {
		if err := c.reg.Insert(u, n); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) registerUnknownKeywords(m map[string]any, stack []uri.URI) error {
	for _, key := range sortedKeys(m) {
		if recognized[key] {
			continue
		}
		raw := m[key]
		for _, u := range stack {
			if err := c.reg.InsertUnknownKeyword(u, key, raw, c.compileFunc()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Compiler) buildTypeSchema(m map[string]any, stack []uri.URI) (*node.Type, error) {
	t := &node.Type{}

	types, err := typeSet(m["type"])
	if err != nil {
		return nil, err
	}
	t.Types = types
	need := func(tag string) bool { return len(types) == 0 || types[tag] }

	if need("string") {
		s, err := c.buildString(m)
		if err != nil {
			return nil, err
		}
		t.Str = s
	}
	if need("number") || need("integer") {
		t.Numeric = buildNumeric(m)
	}
	if need("object") {
		o, err := c.buildObject(m, stack)
		if err != nil {
			return nil, err
		}
		t.Obj = o
	}
	if need("array") {
		a, err := c.buildArray(m, stack)
		if err != nil {
			return nil, err
		}
		t.Arr = a
	}

	if rawEnum, ok := m["enum"].([]any); ok {
		t.HasEnum = true
		t.Enum = rawEnum
	}
	if rawConst, ok := m["const"]; ok {
		t.HasConst = true
		t.Const = rawConst
	}
	if rawNot, ok := m["not"]; ok {
		sub, err := c.compileAt(rawNot, []string{"not"}, stack)
		if err != nil {
			return nil, err
		}
		t.Not = &node.Not{Sub: sub}
	}

	for _, kw := range [...]struct {
		key  string
		mode node.Mode
	}{{"allOf", node.AllOf}, {"anyOf", node.AnyOf}, {"oneOf", node.OneOf}} {
		raw, ok := m[kw.key].([]any)
		if !ok {
			continue
		}
		subs := make([]node.Node, 0, len(raw))
		for i, item := range raw {
			sub, err := c.compileAt(item, []string{kw.key, strconv.Itoa(i)}, stack)
			if err != nil {
				return nil, err
			}
			subs = append(subs, sub)
		}
		comb := &node.Combination{Mode: kw.mode, Subs: subs}
		switch kw.mode {
		case node.AllOf:
			t.AllOf = comb
		case node.AnyOf:
			t.AnyOf = comb
		case node.OneOf:
			t.OneOf = comb
		}
	}

	if rawIf, ok := m["if"]; ok {
		ifNode, err := c.compileAt(rawIf, []string{"if"}, stack)
		if err != nil {
			return nil, err
		}
		ite := &node.IfThenElse{If: ifNode}
		if rawThen, ok := m["then"]; ok {
			thenNode, err := c.compileAt(rawThen, []string{"then"}, stack)
			if err != nil {
				return nil, err
			}
			ite.Then = thenNode
		}
		if rawElse, ok := m["else"]; ok {
			elseNode, err := c.compileAt(rawElse, []string{"else"}, stack)
			if err != nil {
				return nil, err
			}
			ite.Else = elseNode
		}
		t.IfThenElse = ite
	}
	return t, nil
}

func buildNumeric(m map[string]any) *node.Numeric {
	return &node.Numeric{
		Maximum:          floatPtr(m["maximum"]),
		Minimum:          floatPtr(m["minimum"]),
		ExclusiveMaximum: floatPtr(m["exclusiveMaximum"]),
		ExclusiveMinimum: floatPtr(m["exclusiveMinimum"]),
		MultipleOf:       floatPtr(m["multipleOf"]),
	}
}

func (c *Compiler) buildString(m map[string]any) (*node.String, error) {
	s := &node.String{}
	if v, ok := intPtr(m["maxLength"]); ok {
		s.MaxLength = v
	}
	if v, ok := intPtr(m["minLength"]); ok {
		s.MinLength = v
	}
	if raw, ok := m["pattern"].(string); ok {
		p, err := ecma.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("jsonschema: invalid pattern %q: %w", raw, err)
		}
		s.Pattern = p
	}
	if f, ok := m["format"].(string); ok {
		s.Format = f
		s.Checker = c.opts.FormatChecker
	}
	return s, nil
}

func (c *Compiler) buildObject(m map[string]any, stack []uri.URI) (*node.Object, error) {
	o := &node.Object{Properties: map[string]node.Node{}}
	if v, ok := intPtr(m["maxProperties"]); ok {
		o.MaxProperties = v
	}
	if v, ok := intPtr(m["minProperties"]); ok {
		o.MinProperties = v
	}
	if raw, ok := m["required"].([]any); ok {
		names, err := stringSlice(raw)
		if err != nil {
			return nil, err
		}
		o.Required = names
	}
	if props, ok := m["properties"].(map[string]any); ok {
		for _, name := range sortedKeys(props) {
			n, err := c.compileAt(props[name], []string{"properties", name}, stack)
			if err != nil {
				return nil, err
			}
			o.Properties[name] = n
		}
	}
	if pp, ok := m["patternProperties"].(map[string]any); ok {
		for _, pat := range sortedKeys(pp) {
			re, err := ecma.Compile(pat)
			if err != nil {
				return nil, fmt.Errorf("jsonschema: invalid patternProperties pattern %q: %w", pat, err)
			}
			n, err := c.compileAt(pp[pat], []string{"patternProperties", pat}, stack)
			if err != nil {
				return nil, err
			}
			o.PatternProperties = append(o.PatternProperties, node.PatternProperty{Pattern: re, Schema: n})
		}
	}
	if raw, ok := m["additionalProperties"]; ok {
		n, err := c.compileAt(raw, []string{"additionalProperties"}, stack)
		if err != nil {
			return nil, err
		}
		o.AdditionalProperties = n
	}
	if raw, ok := m["propertyNames"]; ok {
		n, err := c.compileAt(raw, []string{"propertyNames"}, stack)
		if err != nil {
			return nil, err
		}
		o.PropertyNames = n
	}
	if deps, ok := m["dependencies"].(map[string]any); ok {
		for _, key := range sortedKeys(deps) {
			switch v := deps[key].(type) {
			case []any:
				names, err := stringSlice(v)
				if err != nil {
					return nil, err
				}
				o.Dependencies = append(o.Dependencies, node.Dependency{Key: key, Schema: &node.Required{Names: names}})
			default:
				n, err := c.compileAt(deps[key], []string{"dependencies", key}, stack)
				if err != nil {
					return nil, err
				}
				o.Dependencies = append(o.Dependencies, node.Dependency{Key: key, Schema: n})
			}
		}
	}
	return o, nil
}

func (c *Compiler) buildArray(m map[string]any, stack []uri.URI) (*node.Array, error) {
	a := &node.Array{}
	if v, ok := intPtr(m["maxItems"]); ok {
		a.MaxItems = v
	}
	if v, ok := intPtr(m["minItems"]); ok {
		a.MinItems = v
	}
	if b, ok := m["uniqueItems"].(bool); ok {
		a.UniqueItems = b
	}
	if raw, ok := m["items"]; ok {
		switch v := raw.(type) {
		case []any:
			seq := make([]node.Node, len(v))
			for i, item := range v {
				n, err := c.compileAt(item, []string{"items", strconv.Itoa(i)}, stack)
				if err != nil {
					return nil, err
				}
				seq[i] = n
			}
			a.ItemsSeq = seq
		default:
			n, err := c.compileAt(raw, []string{"items"}, stack)
			if err != nil {
				return nil, err
			}
			a.ItemsSingle = n
		}
	}
	if raw, ok := m["additionalItems"]; ok {
		n, err := c.compileAt(raw, []string{"additionalItems"}, stack)
		if err != nil {
			return nil, err
		}
		a.AdditionalItems = n
	}
	if raw, ok := m["contains"]; ok {
		n, err := c.compileAt(raw, []string{"contains"}, stack)
		if err != nil {
			return nil, err
		}
		a.Contains = n
	}
	return a, nil
}
