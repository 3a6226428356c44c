package core

// Frame is an insertion-ordered set of variable slots.
type Frame struct {
	names []string
	slots map[string]*Value
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{slots: make(map[string]*Value)}
}

// Len returns the number of declared variables.
func (f *Frame) Len() int {
	return len(f.names)
}

// Names returns the variable names in declaration order.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Get returns the value held by a declared variable.
func (f *Frame) Get(name string) (Value, bool) {
	slot, ok := f.slots[name]
	if !ok {
		return Value{}, false
	}
	return *slot, true
}

func (f *Frame) declare(name string) bool {
	if _, exists := f.slots[name]; exists {
		return false
	}
	f.names = append(f.names, name)
	f.slots[name] = new(Value)
	return true
}

func (f *Frame) slot(name string) (*Value, bool) {
	slot, ok := f.slots[name]
	return slot, ok
}

// FrameStore holds the global frame, the optional temporary frame and the
// stack of local frames.
type FrameStore struct {
	global *Frame
	temp   *Frame
	locals []*Frame
}

// NewFrameStore creates a store with an empty global frame and no
// temporary or local frames.
func NewFrameStore() *FrameStore {
	return &FrameStore{global: NewFrame()}
}

// Global returns the global frame.
func (s *FrameStore) Global() *Frame { return s.global }

// Temp returns the temporary frame, nil if none exists.
func (s *FrameStore) Temp() *Frame { return s.temp }

// Local returns the active local frame, nil if the stack is empty.
func (s *FrameStore) Local() *Frame {
	if len(s.locals) == 0 {
		return nil
	}
	return s.locals[len(s.locals)-1]
}

// LocalDepth returns the number of frames on the local frame stack.
func (s *FrameStore) LocalDepth() int { return len(s.locals) }

func (s *FrameStore) frame(scope Scope) (*Frame, error) {
	var f *Frame
	switch scope {
	case GlobalScope:
		f = s.global
	case LocalScope:
		f = s.Local()
	case TempScope:
		f = s.temp
	}

	if f == nil {
		return nil, Errorf(FrameAccessError, "%s frame does not exist", scope)
	}

	return f, nil
}

func (s *FrameStore) lookup(ref VarRef) (*Value, error) {
	f, err := s.frame(ref.Scope)
	if err != nil {
		return nil, err
	}

	slot, ok := f.slot(ref.Name)
	if !ok {
		return nil, Errorf(VariableAccessError, "variable %s is not declared", ref)
	}

	return slot, nil
}

// Declare creates an undefined variable in the frame selected by scope.
func (s *FrameStore) Declare(ref VarRef) error {
	f, err := s.frame(ref.Scope)
	if err != nil {
		return err
	}

	if !f.declare(ref.Name) {
		return Errorf(SemanticError, "variable %s is already declared", ref)
	}

	return nil
}

// Read returns the value of an initialized variable.
func (s *FrameStore) Read(ref VarRef) (Value, error) {
	slot, err := s.lookup(ref)
	if err != nil {
		return Value{}, err
	}

	if !slot.IsDefined() {
		return Value{}, Errorf(ValueError, "variable %s is not initialized", ref)
	}

	return *slot, nil
}

// Write replaces the value of a declared variable.
func (s *FrameStore) Write(ref VarRef, v Value) error {
	slot, err := s.lookup(ref)
	if err != nil {
		return err
	}

	*slot = v

	return nil
}

// CreateFrame installs a new empty temporary frame, discarding the
// previous one.
func (s *FrameStore) CreateFrame() {
	s.temp = NewFrame()
}

// PushFrame moves the temporary frame onto the local frame stack.
func (s *FrameStore) PushFrame() error {
	if s.temp == nil {
		return Errorf(FrameAccessError, "no temporary frame to push")
	}

	s.locals = append(s.locals, s.temp)
	s.temp = nil

	return nil
}

// PopFrame moves the top local frame into the temporary frame slot.
func (s *FrameStore) PopFrame() error {
	if len(s.locals) == 0 {
		return Errorf(FrameAccessError, "local frame stack is empty")
	}

	last := len(s.locals) - 1
	s.temp = s.locals[last]
	s.locals[last] = nil
	s.locals = s.locals[:last]

	return nil
}
