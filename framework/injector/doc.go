// Package injector provides a reflective dependency-injection resolver:
// given a requested abstraction and a set of registered bindings, it picks
// the concrete implementation, recursively resolves that implementation's
// constructor dependencies, and returns a fully-wired object graph.
//
// # Identifiers
//
// Abstractions are identified by plain strings. The injector never inspects
// Go types to discover what to build — every constructible class is
// registered up front with a constructor descriptor that names and
// classifies its parameters:
//
//	inj := injector.New()
//	inj.MustRegisterType("Engine", NewEngine)
//	inj.MustRegisterType("Car", NewCar,
//	    injector.Dep("engine", "Engine"),
//	    injector.ArgDefault("seats", 4))
//
// # Bindings
//
//	// Laravel: $app->bind(EngineInterface::class, V8Engine::class)
//	inj.Bind("EngineInterface", "V8Engine")
//
// Bindings are chased transitively at Make() time: A → B → C resolves A to
// an instance of C. Registration order is unconstrained; a binding may point
// at an abstraction that is bound later. A cycle in the bindings, or a
// constructor-dependency cycle across objects, fails with
// CircularReferenceError instead of recursing forever.
//
// # Resolving
//
//	car, err := inj.Make("Car", nil)
//
//	// call-site arguments apply to the outermost constructor only
//	car, err := inj.Make("Car", injector.Arguments{"seats": 2})
//
//	// generic helper
//	car, err := injector.Resolve[*Car](inj, "Car")
//
// Value parameters resolve by name, in order of precedence: call-site
// arguments, class-scoped argument bindings, global argument bindings, the
// declared default. Object dependencies always take the full resolution
// path and never consult argument bindings.
//
//	inj.BindArgument("Car", "seats", 2)
//	inj.BindArgument(injector.GlobalArguments, "seats", 5)
//
// # Shared instances
//
//	// Laravel: $app->singleton(Cache::class, ...)
//	inj.Share("Cache")
//
// The first successful construction of the class a shared abstraction
// resolves to is cached; every later resolution reaching that class returns
// the identical instance, regardless of which interface it was requested
// through.
//
// # Delegates and custom instantiation
//
//	inj.Share("config").Delegate("config", func(i injector.Injector, _ string) (any, error) {
//	    return config.Load(), nil
//	})
//
// A delegate replaces construction for one concrete class. To wrap
// construction globally (proxying, pooling), install a custom Instantiator
// with injector.WithInstantiator.
//
// # Errors
//
// Every failure from Make wraps ErrMakeFailed and carries a discriminating
// type: CircularReferenceError, NotInstantiableError,
// UnreflectableClassError, UnresolvedArgumentError,
// UninstantiatedSharedInstanceError. Failures are fatal to the in-flight
// Make call; there is no partial result.
//
// # Concurrency
//
// The injector performs no internal locking. Register bindings, types, and
// shared marks fully before issuing concurrent Make calls, and serialize
// the first-time construction of each shared instance externally if
// concurrent first use is possible.
package injector
