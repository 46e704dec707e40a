package rei

// Class is a class value: its name, an ordered list of base classes,
// and insertion-ordered method tables for instance and static methods
// (spec §3.5). Lookup order across superclasses is linear — declared
// order, recursively — not C3 linearized (spec §9 design note).
type Class struct {
	Name          string
	Superclasses  []*Class
	methodOrder   []string
	methods       map[string]*Function
	staticOrder   []string
	staticMethods map[string]*Function
}

func NewClass(name string, superclasses []*Class) *Class {
	return &Class{
		Name:          name,
		Superclasses:  superclasses,
		methods:       make(map[string]*Function),
		staticMethods: make(map[string]*Function),
	}
}

func (c *Class) AddMethod(name string, fn *Function) {
	if _, exists := c.methods[name]; !exists {
		c.methodOrder = append(c.methodOrder, name)
	}
	c.methods[name] = fn
}

func (c *Class) AddStaticMethod(name string, fn *Function) {
	if _, exists := c.staticMethods[name]; !exists {
		c.staticOrder = append(c.staticOrder, name)
	}
	c.staticMethods[name] = fn
}

// FindMethod searches own methods first, then each superclass in
// declaration order, recursively (spec §4.4.7).
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.methods[name]; ok {
		return fn, true
	}
	for _, super := range c.Superclasses {
		if fn, ok := super.FindMethod(name); ok {
			return fn, true
		}
	}
	return nil, false
}

// FindStaticMethod mirrors FindMethod against the static tables.
func (c *Class) FindStaticMethod(name string) (*Function, bool) {
	if fn, ok := c.staticMethods[name]; ok {
		return fn, true
	}
	for _, super := range c.Superclasses {
		if fn, ok := super.FindStaticMethod(name); ok {
			return fn, true
		}
	}
	return nil, false
}

// HasAncestor reports whether name names this class or any class in
// its superclass closure — the predicate behind @typeof (spec §4.4.8).
func (c *Class) HasAncestor(name string) bool {
	if c.Name == name {
		return true
	}
	for _, super := range c.Superclasses {
		if super.HasAncestor(name) {
			return true
		}
	}
	return false
}

func (c *Class) methodNames() []string       { return c.methodOrder }
func (c *Class) staticMethodNames() []string { return c.staticOrder }

func (*Class) valueNode()       {}
func (c *Class) String() string { return "<class " + c.Name + ">" }

func (c *Class) Arity() int {
	if init, ok := c.methods["init"]; ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) DisplayName() string { return c.Name }

func (c *Class) AsClass() (*Class, bool) { return c, true }

// Call runs the class's `init` method (if any) against a freshly
// constructed instance, returning the instance; a class with no `init`
// has arity 0 and the instance is returned immediately (spec §4.4.7).
func (c *Class) Call(e *Evaluator, args []Value, ctx *ExecContext) (Value, error) {
	instance := &InstanceValue{Class: c, Fields: make(map[string]Value)}
	if init, ok := c.methods["init"]; ok {
		if _, err := init.Bind(instance).Call(e, args, ctx); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
