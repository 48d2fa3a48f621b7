package glsl

import "glslfront/internal/ir"

type scope map[string]ir.Handle[ir.LocalVariable]

// Context holds the function being translated. Its arenas move into the
// ir.Function when the body closes.
type Context struct {
	Expressions ir.Arena[ir.Expression]
	Locals      ir.Arena[ir.LocalVariable]
	scopes      []scope
}

func (c *Context) PushScope() {
	c.scopes = append(c.scopes, make(scope))
}

func (c *Context) PopScope() {
	if len(c.scopes) > 0 {
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}

func (c *Context) ClearScopes() {
	c.scopes = c.scopes[:0]
}

func (c *Context) ScopeDepth() int {
	return len(c.scopes)
}

// LookupLocal searches from the innermost scope outwards.
func (c *Context) LookupLocal(name string) (ir.Handle[ir.LocalVariable], bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if h, ok := c.scopes[i][name]; ok {
			return h, true
		}
	}
	return 0, false
}

// LookupLocalCurrentScope only searches the innermost scope.
func (c *Context) LookupLocalCurrentScope(name string) (ir.Handle[ir.LocalVariable], bool) {
	if len(c.scopes) == 0 {
		return 0, false
	}
	h, ok := c.scopes[len(c.scopes)-1][name]
	return h, ok
}

// AddLocal binds name in the innermost scope, opening one if needed.
func (c *Context) AddLocal(name string, h ir.Handle[ir.LocalVariable]) {
	if len(c.scopes) == 0 {
		c.PushScope()
	}
	c.scopes[len(c.scopes)-1][name] = h
}

func (c *Context) appendExpr(e ir.Expression) ir.Handle[ir.Expression] {
	return c.Expressions.Append(e)
}

// take moves the arenas out and leaves the context empty for the next function.
func (c *Context) take() (ir.Arena[ir.Expression], ir.Arena[ir.LocalVariable]) {
	exprs, locals := c.Expressions, c.Locals
	c.Expressions = ir.Arena[ir.Expression]{}
	c.Locals = ir.Arena[ir.LocalVariable]{}
	c.ClearScopes()
	return exprs, locals
}
