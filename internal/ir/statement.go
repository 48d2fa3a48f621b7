package ir

import "fmt"

type StmtKind uint8

const (
	StmtEmpty StmtKind = iota
	StmtBlock
	StmtStore
)

func (k StmtKind) String() string {
	switch k {
	case StmtEmpty:
		return "Empty"
	case StmtBlock:
		return "Block"
	case StmtStore:
		return "Store"
	}
	return fmt.Sprintf("StmtKind(%d)", k)
}

// Statement is Empty, Block(Block) or Store(Pointer, Value).
type Statement struct {
	Kind    StmtKind
	Block   []Statement
	Pointer Handle[Expression]
	Value   Handle[Expression]
}

func EmptyStmt() Statement { return Statement{Kind: StmtEmpty} }

func BlockStmt(body []Statement) Statement { return Statement{Kind: StmtBlock, Block: body} }

func StoreStmt(pointer, value Handle[Expression]) Statement {
	return Statement{Kind: StmtStore, Pointer: pointer, Value: value}
}

// Flatten collapses pending statements: none is Empty, one is itself, more is a Block.
func Flatten(stmts []Statement) Statement {
	switch len(stmts) {
	case 0:
		return EmptyStmt()
	case 1:
		return stmts[0]
	default:
		return BlockStmt(stmts)
	}
}
