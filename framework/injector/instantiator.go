package injector

import (
	"fmt"
	"reflect"
)

// Instantiator turns a concrete class identifier and its already-resolved
// constructor arguments into an object. The injector ships with a default
// implementation that calls the registered constructor func; supply a custom
// one via WithInstantiator to wrap construction (proxies, decoration,
// pooling) without touching the resolution algorithm.
type Instantiator interface {
	Instantiate(class string, deps []any) (any, error)
}

// defaultInstantiator forwards deps positionally to the class's registered
// constructor func.
type defaultInstantiator struct {
	types *typeRegistry
}

func (di *defaultInstantiator) Instantiate(class string, deps []any) (any, error) {
	ctor, err := di.types.reflect(class)
	if err != nil {
		return nil, err
	}
	return ctor.call(class, deps)
}

func (c *Constructor) call(class string, deps []any) (any, error) {
	t := c.fn.Type()
	if len(deps) != t.NumIn() {
		return nil, fmt.Errorf(
			"injector: constructor for %q takes %d arguments, got %d", class, t.NumIn(), len(deps))
	}

	in := make([]reflect.Value, len(deps))
	for i, dep := range deps {
		if dep == nil {
			in[i] = reflect.Zero(t.In(i))
			continue
		}
		v := reflect.ValueOf(dep)
		switch {
		case v.Type().AssignableTo(t.In(i)):
		case v.Type().ConvertibleTo(t.In(i)):
			v = v.Convert(t.In(i))
		default:
			return nil, fmt.Errorf(
				"injector: argument %d for %q is %T, constructor wants %v", i, class, dep, t.In(i))
		}
		in[i] = v
	}

	out := c.fn.Call(in)
	if c.returnsErr && !out[1].IsNil() {
		return nil, fmt.Errorf("injector: constructor for %q failed: %w",
			class, out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}
