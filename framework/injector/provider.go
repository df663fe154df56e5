package injector

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider is the unit of application bootstrap: it registers
// bindings, constructor descriptors, and shared marks into the injector.
//
// Every provider must implement at minimum Register(). Boot() is called
// after ALL providers have been registered, making it safe to resolve other
// bindings inside Boot().
//
//	type AppServiceProvider struct{ injector.BaseProvider }
//
//	func (p *AppServiceProvider) Register(inj *injector.SimpleInjector) {
//	    inj.DeclareInterface("Mailer").
//	        Bind("Mailer", "SMTPMailer").
//	        Share("SMTPMailer")
//	    inj.MustRegisterType("SMTPMailer", mail.NewSMTP)
//	}
//
//	func (p *AppServiceProvider) Boot(inj *injector.SimpleInjector) {
//	    mailer := injector.MustResolve[Mailer](inj, "Mailer")
//	    mailer.Ping()
//	}
type ServiceProvider interface {
	// Register binds services into the injector.
	// Do NOT resolve other bindings here — use Boot() for that.
	Register(inj *SimpleInjector)

	// Boot is called after all providers are registered.
	// Safe to resolve and use any binding here.
	Boot(inj *SimpleInjector)

	// Provides returns the abstraction identifiers this provider registers.
	// Used for deferred (lazy) provider loading; return nil if the
	// provider is always eager.
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() abstractions is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations
// of Boot(), Provides(), and IsDeferred().
// Embed it in your provider and only override what you need.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *SimpleInjector) {}
func (p *BaseProvider) Provides() []string     { return nil }
func (p *BaseProvider) IsDeferred() bool       { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred (lazy) providers.
type ProviderRegistry struct {
	inj        *SimpleInjector
	eager      []ServiceProvider
	deferred   map[string]ServiceProvider // abstraction → provider
	booted     bool
	registered map[ServiceProvider]bool
	loaded     map[ServiceProvider]bool
}

// NewProviderRegistry creates a registry bound to inj.
func NewProviderRegistry(inj *SimpleInjector) *ProviderRegistry {
	return &ProviderRegistry{
		inj:        inj,
		deferred:   make(map[string]ServiceProvider),
		registered: make(map[ServiceProvider]bool),
		loaded:     make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless
// deferred).
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true

	if provider.IsDeferred() {
		for _, abstract := range provider.Provides() {
			r.deferred[abstract] = provider
		}
		r.interceptDeferred(provider)
		return
	}

	provider.Register(r.inj)
	r.loaded[provider] = true
	r.eager = append(r.eager, provider)

	if r.booted {
		provider.Boot(r.inj)
	}
}

// interceptDeferred installs a delegate for each deferred abstraction. The
// first Make() reaching it triggers real registration, then resolves again
// through whatever the provider registered.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, abstract := range provider.Provides() {
		abs := abstract
		r.inj.Delegate(abs, func(inj Injector, _ string) (any, error) {
			delete(r.inj.delegates, abs)
			delete(r.deferred, abs)
			if !r.loaded[provider] {
				r.loaded[provider] = true
				provider.Register(r.inj)
				if r.booted {
					provider.Boot(r.inj)
				}
			}
			return inj.Make(abs, nil)
		})
	}
}

// Boot calls Boot() on all eager providers.
// Must be called after ALL providers have been registered.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.inj)
	}
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }
