package ir

// Module is the translation result: interned types, constants and globals plus
// the finished functions.
type Module struct {
	Types     UniqueArena[Type]
	Constants UniqueArena[Constant]
	Globals   UniqueArena[GlobalVariable]
	Functions Arena[Function]
}

func NewModule() *Module {
	return &Module{
		Types:     *NewUniqueArena[Type](),
		Constants: *NewUniqueArena[Constant](),
		Globals:   *NewUniqueArena[GlobalVariable](),
	}
}

// FunctionByName returns the first function with the given name.
func (m *Module) FunctionByName(name string) (Handle[Function], *Function) {
	for _, h := range m.Functions.Handles() {
		if f := m.Functions.Get(h); f.Name == name {
			return h, f
		}
	}
	return 0, nil
}
