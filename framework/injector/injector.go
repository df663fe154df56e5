package injector

import (
	"fmt"
	"sort"
)

// ── Public contract ───────────────────────────────────────────────────────────

// Arguments supplies call-site values for the outermost constructor's value
// parameters, keyed by parameter name. Arguments never propagate into nested
// dependency constructors — use BindArgument for that.
type Arguments map[string]any

// GlobalArguments is the reserved owner scope for BindArgument. A value
// bound under it applies to a parameter name in any class that has no
// class-specific binding for that name.
const GlobalArguments = "*"

// DelegateFunc replaces construction for one concrete class. It receives
// the injector so it can resolve collaborators itself.
type DelegateFunc func(inj Injector, class string) (any, error)

// Injector resolves abstractions into fully-wired object graphs.
//
//	// Laravel: $app->bind(EngineInterface::class, V8Engine::class)
//	inj.Bind("EngineInterface", "V8Engine")
//
//	// Laravel: $app->make(Car::class)
//	car, err := inj.Make("Car", nil)
type Injector interface {
	// Make resolves abstraction into an object, recursively constructing
	// its dependency graph. args applies only to the outermost
	// constructor's own value parameters.
	Make(abstraction string, args Arguments) (any, error)

	// Bind maps an abstraction to another abstraction or concrete class.
	// Last write wins; resolvability is checked at Make() time, not here.
	Bind(from, to string) Injector

	// BindArgument registers a literal value for the named constructor
	// parameter, scoped to owner (a class identifier or GlobalArguments).
	BindArgument(owner, name string, value any)

	// Share marks abstraction as a shared singleton: the first successful
	// construction of the class it resolves to is cached and returned for
	// every later resolution reaching that class.
	Share(abstraction string) Injector

	// Delegate installs a custom construction callback, bypassing
	// constructor reflection. The key is matched against the terminal
	// identifier of the binding chase: delegate the concrete class
	// itself, not an abstraction bound to it.
	Delegate(class string, fn DelegateFunc) Injector
}

// ── SimpleInjector ────────────────────────────────────────────────────────────

// sharedSlot distinguishes "requested as shared" (empty) from "constructed"
// (populated). Absence from the map means never requested as shared.
type sharedSlot struct {
	instance  any
	populated bool
}

// SimpleInjector is the default Injector. It is deliberately lock-free:
// configure bindings fully before issuing concurrent Make() calls, and
// serialize the first resolution of each shared instance externally if
// concurrent first-use is possible.
type SimpleInjector struct {
	mappings         map[string]string
	argumentMappings map[string]map[string]any
	sharedInstances  map[string]*sharedSlot
	delegates        map[string]DelegateFunc
	types            *typeRegistry
	instantiator     Instantiator
}

var _ Injector = (*SimpleInjector)(nil)

// Option configures a SimpleInjector at construction time.
type Option func(*SimpleInjector)

// WithInstantiator substitutes the construction strategy used after
// argument resolution.
func WithInstantiator(in Instantiator) Option {
	return func(inj *SimpleInjector) { inj.instantiator = in }
}

// New creates an empty SimpleInjector.
func New(opts ...Option) *SimpleInjector {
	inj := &SimpleInjector{
		mappings:         make(map[string]string),
		argumentMappings: make(map[string]map[string]any),
		sharedInstances:  make(map[string]*sharedSlot),
		delegates:        make(map[string]DelegateFunc),
		types:            newTypeRegistry(),
	}
	inj.instantiator = &defaultInstantiator{types: inj.types}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// ── Registration ──────────────────────────────────────────────────────────────

// RegisterType registers the constructor descriptor for a concrete class.
//
//	err := inj.RegisterType("Car", NewCar, injector.Dep("engine", "Engine"))
func (inj *SimpleInjector) RegisterType(class string, fn any, params ...Param) error {
	ctor, err := NewConstructor(fn, params...)
	if err != nil {
		return err
	}
	inj.types.register(class, ctor)
	return nil
}

// MustRegisterType is RegisterType panicking on a malformed constructor,
// chainable for bootstrap code.
func (inj *SimpleInjector) MustRegisterType(class string, fn any, params ...Param) *SimpleInjector {
	if err := inj.RegisterType(class, fn, params...); err != nil {
		panic(err)
	}
	return inj
}

// DeclareInterface registers an abstraction the injector should know about
// but never construct directly. Resolving it without a binding fails with
// NotInstantiableError instead of UnreflectableClassError.
func (inj *SimpleInjector) DeclareInterface(abstraction string) *SimpleInjector {
	inj.types.declareInterface(abstraction)
	return inj
}

// Bind implements Injector.
func (inj *SimpleInjector) Bind(from, to string) Injector {
	inj.mappings[from] = to
	return inj
}

// BindArgument implements Injector.
func (inj *SimpleInjector) BindArgument(owner, name string, value any) {
	m, ok := inj.argumentMappings[owner]
	if !ok {
		m = make(map[string]any)
		inj.argumentMappings[owner] = m
	}
	m[name] = value
}

// Share implements Injector. The empty slot it inserts is keyed by the
// abstraction as given; the populated slot created on first construction is
// keyed by the final concrete class, so two interfaces bound to the same
// class share one instance.
func (inj *SimpleInjector) Share(abstraction string) Injector {
	if _, ok := inj.sharedInstances[abstraction]; !ok {
		inj.sharedInstances[abstraction] = &sharedSlot{}
	}
	return inj
}

// Delegate implements Injector.
func (inj *SimpleInjector) Delegate(class string, fn DelegateFunc) Injector {
	inj.delegates[class] = fn
	return inj
}

// Instance registers a pre-built value as the populated shared instance for
// abstraction.
//
//	// Laravel: $app->instance('config', $config)
//	inj.Instance("config", cfg)
func (inj *SimpleInjector) Instance(abstraction string, value any) *SimpleInjector {
	inj.sharedInstances[abstraction] = &sharedSlot{instance: value, populated: true}
	return inj
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make implements Injector.
func (inj *SimpleInjector) Make(abstraction string, args Arguments) (any, error) {
	chain, err := inj.resolveBinding(NewInjectionChain(), abstraction)
	if err != nil {
		return nil, err
	}
	return inj.makeResolved(chain, 0, args)
}

// makeDependency resolves a nested dependency, reusing and extending the
// outer call's chain so cross-object cycles are caught. Call-site arguments
// are deliberately not forwarded. The dependency's own binding chase starts
// where the outer chain left off; the share mark must not leak across that
// boundary.
func (inj *SimpleInjector) makeDependency(chain InjectionChain, abstraction string) (any, error) {
	chaseStart := chain.Len()
	chain, err := inj.resolveBinding(chain, abstraction)
	if err != nil {
		return nil, err
	}
	return inj.makeResolved(chain, chaseStart, nil)
}

// resolveBinding chases mappings until it reaches an abstraction with no
// further binding, appending every hop to the chain. A revisited identifier
// is a circular reference.
func (inj *SimpleInjector) resolveBinding(chain InjectionChain, abstraction string) (InjectionChain, error) {
	if chain.Contains(abstraction) {
		return chain, &CircularReferenceError{Abstract: abstraction, Chain: chain.Resolutions()}
	}
	chain = chain.Add(abstraction)
	if to, ok := inj.mappings[abstraction]; ok {
		return inj.resolveBinding(chain, to)
	}
	return chain, nil
}

func (inj *SimpleInjector) makeResolved(chain InjectionChain, chaseStart int, args Arguments) (any, error) {
	class := chain.Class()

	if inj.hasSharedInstance(class) {
		return inj.sharedInstance(class)
	}

	obj, err := inj.construct(chain, class, args)
	if err != nil {
		return nil, err
	}

	if inj.isShared(chain, chaseStart) {
		slot, ok := inj.sharedInstances[class]
		if !ok {
			slot = &sharedSlot{}
			inj.sharedInstances[class] = slot
		}
		slot.instance = obj
		slot.populated = true
	}
	return obj, nil
}

func (inj *SimpleInjector) construct(chain InjectionChain, class string, args Arguments) (any, error) {
	if delegate, ok := inj.delegates[class]; ok {
		return delegate(inj, class)
	}

	ctor, err := inj.types.reflect(class)
	if err != nil {
		return nil, err
	}

	params := ctor.Params()
	deps := make([]any, 0, len(params))
	for _, p := range params {
		v, err := inj.resolveArgument(chain, class, p, args)
		if err != nil {
			return nil, err
		}
		deps = append(deps, v)
	}

	return inj.instantiator.Instantiate(class, deps)
}

// resolveArgument resolves one constructor parameter. Object dependencies
// always take the full resolution path, even when an argument binding
// exists for the same name; value parameters resolve strictly by name.
func (inj *SimpleInjector) resolveArgument(chain InjectionChain, class string, p Param, args Arguments) (any, error) {
	switch p := p.(type) {
	case dependencyParam:
		return inj.makeDependency(chain, p.abstract)
	case valueParam:
		return inj.resolveArgumentByName(class, p, args)
	default:
		return nil, fmt.Errorf("injector: unknown parameter kind %T for %q", p, class)
	}
}

func (inj *SimpleInjector) resolveArgumentByName(class string, p valueParam, args Arguments) (any, error) {
	if v, ok := args[p.name]; ok {
		return v, nil
	}
	if m, ok := inj.argumentMappings[class]; ok {
		if v, ok := m[p.name]; ok {
			return v, nil
		}
	}
	if m, ok := inj.argumentMappings[GlobalArguments]; ok {
		if v, ok := m[p.name]; ok {
			return v, nil
		}
	}
	if p.hasDefault {
		return p.def, nil
	}
	return nil, &UnresolvedArgumentError{Class: class, Param: p.name}
}

// ── Shared-instance slots ─────────────────────────────────────────────────────

func (inj *SimpleInjector) hasSharedInstance(class string) bool {
	slot, ok := inj.sharedInstances[class]
	return ok && slot.populated
}

func (inj *SimpleInjector) sharedInstance(class string) (any, error) {
	slot, ok := inj.sharedInstances[class]
	if !ok || !slot.populated {
		return nil, &UninstantiatedSharedInstanceError{Class: class}
	}
	return slot.instance, nil
}

// isShared reports whether any abstraction visited by the current binding
// chase (the chain suffix starting at chaseStart) was marked shared, which
// makes the chase's concrete class shared. Earlier chain elements belong to
// enclosing resolutions and do not mark this class.
func (inj *SimpleInjector) isShared(chain InjectionChain, chaseStart int) bool {
	for _, abstract := range chain.Resolutions()[chaseStart:] {
		if _, ok := inj.sharedInstances[abstract]; ok {
			return true
		}
	}
	return false
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Bindings returns a copy of the abstraction mappings, for debugging.
func (inj *SimpleInjector) Bindings() map[string]string {
	out := make(map[string]string, len(inj.mappings))
	for from, to := range inj.mappings {
		out[from] = to
	}
	return out
}

// RegisteredClasses returns the sorted identifiers of all classes with a
// registered constructor.
func (inj *SimpleInjector) RegisteredClasses() []string {
	return inj.types.classes()
}

// SharedAbstractions returns the sorted identifiers with a shared slot,
// populated or not.
func (inj *SimpleInjector) SharedAbstractions() []string {
	out := make([]string, 0, len(inj.sharedInstances))
	for abstract := range inj.sharedInstances {
		out = append(out, abstract)
	}
	sort.Strings(out)
	return out
}

// ── Generic helpers ───────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result.
//
//	router, err := injector.Resolve[*routing.Router](inj, "router")
func Resolve[T any](inj Injector, abstraction string) (T, error) {
	var zero T
	obj, err := inj.Make(abstraction, nil)
	if err != nil {
		return zero, err
	}
	typed, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("injector: %q resolved to %T, want %T", abstraction, obj, zero)
	}
	return typed, nil
}

// MustResolve is Resolve panicking on failure. Use it in provider Boot()
// code where a missing binding is a bootstrap bug.
func MustResolve[T any](inj Injector, abstraction string) T {
	v, err := Resolve[T](inj, abstraction)
	if err != nil {
		panic(err)
	}
	return v
}
