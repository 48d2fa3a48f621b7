package ir

import (
	"maps"
	"slices"
)

type usageScan struct {
	exprs *Arena[Expression]
	uses  map[Handle[GlobalVariable]]GlobalUse
	seen  map[Handle[Expression]]bool
}

// ScanGlobalUsage visits body and every local initializer and records, per
// global, whether it is read or written. A global used directly as a Store
// pointer is a write; any other occurrence is a read.
func ScanGlobalUsage(exprs *Arena[Expression], locals *Arena[LocalVariable], body []Statement) []GlobalUsage {
	s := &usageScan{
		exprs: exprs,
		uses:  make(map[Handle[GlobalVariable]]GlobalUse),
		seen:  make(map[Handle[Expression]]bool),
	}
	for _, local := range locals.Slice() {
		if local.Init.IsValid() {
			s.read(local.Init)
		}
	}
	s.block(body)

	keys := slices.Sorted(maps.Keys(s.uses))
	out := make([]GlobalUsage, 0, len(keys))
	for _, g := range keys {
		out = append(out, GlobalUsage{Global: g, Use: s.uses[g]})
	}
	return out
}

// Finalize computes the usage summary of f from its own arenas and body.
func (f *Function) Finalize() {
	f.GlobalUsage = ScanGlobalUsage(&f.Expressions, &f.Locals, f.Body)
}

func (s *usageScan) block(stmts []Statement) {
	for i := range stmts {
		s.stmt(&stmts[i])
	}
}

func (s *usageScan) stmt(st *Statement) {
	switch st.Kind {
	case StmtBlock:
		s.block(st.Block)
	case StmtStore:
		if e := s.exprs.Get(st.Pointer); e != nil && e.Kind == ExprGlobalVariable {
			s.uses[e.Global] |= GlobalUseWrite
		} else {
			s.read(st.Pointer)
		}
		s.read(st.Value)
	}
}

func (s *usageScan) read(h Handle[Expression]) {
	if !h.IsValid() || s.seen[h] {
		return
	}
	s.seen[h] = true
	e := s.exprs.Get(h)
	if e == nil {
		return
	}
	if e.Kind == ExprGlobalVariable {
		s.uses[e.Global] |= GlobalUseRead
	}
	for _, c := range e.Children() {
		s.read(c)
	}
}
