package injector

import (
	"fmt"
	"reflect"
	"sort"
	"unicode"
	"unicode/utf8"
)

// ── Parameter classification ──────────────────────────────────────────────────

// Param describes one constructor parameter. Parameters are classified at
// registration time into exactly two kinds:
//
//   - Dep(name, abstract)        — an object dependency, resolved recursively
//   - Arg(name) / ArgDefault(..) — a value, resolved by parameter name
//
// Resolution order for value parameters is: call-site arguments of the
// outermost Make(), then class-scoped argument bindings, then global
// argument bindings, then the declared default.
type Param interface {
	paramName() string
}

type dependencyParam struct {
	name     string
	abstract string
}

func (p dependencyParam) paramName() string { return p.name }

type valueParam struct {
	name       string
	def        any
	hasDefault bool
}

func (p valueParam) paramName() string { return p.name }

// Dep declares a parameter that is resolved as an object dependency on the
// given abstraction identifier.
func Dep(name, abstract string) Param {
	return dependencyParam{name: name, abstract: abstract}
}

// Arg declares a required value parameter, resolved by name.
func Arg(name string) Param {
	return valueParam{name: name}
}

// ArgDefault declares a value parameter with a default used when no
// call-site argument or argument binding matches.
func ArgDefault(name string, def any) Param {
	return valueParam{name: name, def: def, hasDefault: true}
}

// ── Constructor descriptors ───────────────────────────────────────────────────

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Constructor is the registered signature of a concrete class: its
// constructor function plus the ordered, classified parameter list.
type Constructor struct {
	fn         reflect.Value
	params     []Param
	returnsErr bool
}

// NewConstructor builds a Constructor descriptor for fn.
//
// fn must be a non-variadic function returning either one value or a value
// and an error. params must describe fn's inputs in declaration order; when
// omitted entirely, each input whose type is an interface or a pointer to a
// struct is derived as a Dep on that type's name. Inputs of any other kind
// have no recoverable name and must be declared explicitly.
//
//	injector.NewConstructor(NewStatusService,
//	    injector.Dep("clock", "Clock"),
//	    injector.ArgDefault("version", "dev"))
func NewConstructor(fn any, params ...Param) (*Constructor, error) {
	if fn == nil {
		return nil, fmt.Errorf("injector: constructor func must not be nil")
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("injector: constructor must be a func, got %v", t)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("injector: constructor %v must not be variadic", t)
	}

	returnsErr, err := checkResults(t)
	if err != nil {
		return nil, err
	}

	if len(params) == 0 && t.NumIn() > 0 {
		params, err = deriveParams(t)
		if err != nil {
			return nil, err
		}
	}
	if len(params) != t.NumIn() {
		return nil, fmt.Errorf(
			"injector: constructor %v takes %d parameters, %d declared", t, t.NumIn(), len(params))
	}
	for i, p := range params {
		vp, ok := p.(valueParam)
		if !ok || !vp.hasDefault || vp.def == nil {
			continue
		}
		dt := reflect.TypeOf(vp.def)
		if !dt.AssignableTo(t.In(i)) && !dt.ConvertibleTo(t.In(i)) {
			return nil, fmt.Errorf(
				"injector: default for parameter %q is %v, constructor %v wants %v",
				vp.name, dt, t, t.In(i))
		}
	}

	return &Constructor{fn: v, params: params, returnsErr: returnsErr}, nil
}

// MustConstructor is NewConstructor panicking on a malformed descriptor.
// Intended for bootstrap code where registration errors are programmer
// errors.
func MustConstructor(fn any, params ...Param) *Constructor {
	c, err := NewConstructor(fn, params...)
	if err != nil {
		panic(err)
	}
	return c
}

// Params returns the ordered parameter list.
func (c *Constructor) Params() []Param { return c.params }

func checkResults(t reflect.Type) (returnsErr bool, err error) {
	switch t.NumOut() {
	case 1:
		return false, nil
	case 2:
		if !t.Out(1).Implements(errType) {
			return false, fmt.Errorf(
				"injector: constructor %v returns two values, the second must be an error", t)
		}
		return true, nil
	default:
		return false, fmt.Errorf(
			"injector: constructor %v must return one value, or a value and an error", t)
	}
}

// deriveParams classifies undeclared inputs. Interfaces and struct pointers
// become dependencies keyed by the type name; everything else is rejected
// because parameter names cannot be recovered from a func type.
func deriveParams(t reflect.Type) ([]Param, error) {
	params := make([]Param, 0, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		name := in.Name()
		if in.Kind() == reflect.Ptr && in.Elem().Kind() == reflect.Struct {
			name = in.Elem().Name()
		} else if in.Kind() != reflect.Interface {
			return nil, fmt.Errorf(
				"injector: cannot derive parameter %d of %v; declare it with Arg or ArgDefault", i, t)
		}
		if name == "" {
			return nil, fmt.Errorf(
				"injector: cannot derive a name for parameter %d of %v; declare it with Dep", i, t)
		}
		params = append(params, dependencyParam{name: lowerFirst(name), abstract: name})
	}
	return params, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// ── Type registry ─────────────────────────────────────────────────────────────

// typeRegistry is the injector's view of the type system: every identifier
// it can introspect, either as a constructible class or as a declared
// interface.
type typeRegistry struct {
	constructors map[string]*Constructor
	interfaces   map[string]struct{}
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{
		constructors: make(map[string]*Constructor),
		interfaces:   make(map[string]struct{}),
	}
}

func (r *typeRegistry) register(class string, c *Constructor) {
	r.constructors[class] = c
}

func (r *typeRegistry) declareInterface(abstract string) {
	r.interfaces[abstract] = struct{}{}
}

// reflect returns the constructor signature for class. A declared interface
// yields NotInstantiableError, an unknown identifier UnreflectableClassError.
func (r *typeRegistry) reflect(class string) (*Constructor, error) {
	if c, ok := r.constructors[class]; ok {
		return c, nil
	}
	if _, ok := r.interfaces[class]; ok {
		return nil, &NotInstantiableError{Class: class}
	}
	return nil, &UnreflectableClassError{Class: class}
}

// classes returns all registered class identifiers, sorted.
func (r *typeRegistry) classes() []string {
	out := make([]string, 0, len(r.constructors))
	for class := range r.constructors {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}
