// Package ast defines the parse-tree node types populated by the parser: a
// tagged union realized in Go as one concrete struct type per grammar
// variant, each implementing the Node interface.
//
// The node shapes are bespoke to the grammar they encode — there is no
// third-party "AST toolkit" that fits a hand-written recursive-descent
// front end this small.
package ast

// Position is a 1-based source position, matching the line/column the
// lexer records on every Token.
type Position struct {
	Line   int
	Column int
}

// NodeKind is the tag of the tagged union.
type NodeKind int

const (
	KindProgram NodeKind = iota
	KindFunction
	KindParamList
	KindParameter
	KindCompoundStmt
	KindVariableDecl
	KindAssignExpr
	KindIfStmt
	KindWhileStmt
	KindReturnStmt
	KindExprStmt
	KindBinaryExpr
	KindUnaryExpr
	KindCallExpr
	KindArgList
	KindSubscriptExpr
	KindIdentifier
	KindInteger
	KindCharacter
	KindString
)

var nodeKindNames = [...]string{
	"Program", "Function", "ParamList", "Parameter", "CompoundStmt",
	"VariableDecl", "AssignExpr", "IfStmt", "WhileStmt", "ReturnStmt",
	"ExprStmt", "BinaryExpr", "UnaryExpr", "CallExpr", "ArgList",
	"SubscriptExpr", "Identifier", "Integer", "Character", "String",
}

func (k NodeKind) String() string {
	if int(k) < 0 || int(k) >= len(nodeKindNames) {
		return "Unknown"
	}
	return nodeKindNames[k]
}

// Node is implemented by every parse-tree variant.
type Node interface {
	Kind() NodeKind
	Pos() Position
}

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// DataType is the Void/Int/Char tag attached to declarations and parameters.
type DataType int

const (
	Void DataType = iota
	Int
	Char
)

func (d DataType) String() string {
	switch d {
	case Void:
		return "void"
	case Int:
		return "int"
	case Char:
		return "char"
	default:
		return "?"
	}
}

// BinaryOp is the binary-operator tag attached to BinaryExpr nodes.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Neq
	Lt
	Gt
	Lte
	Gte
	LogAnd
	LogOr
	BitAnd
	BitOr
	BitXor
	Shl
	Shr
)

var binaryOpNames = [...]string{
	"+", "-", "*", "/", "%", "==", "!=", "<", ">", "<=", ">=",
	"&&", "||", "&", "|", "^", "<<", ">>",
}

func (b BinaryOp) String() string {
	if int(b) < 0 || int(b) >= len(binaryOpNames) {
		return "?"
	}
	return binaryOpNames[b]
}

// UnaryOp is the unary-operator tag attached to UnaryExpr nodes. PostInc/
// PostDec are produced only by the postfix ++/-- grammar path; the
// prefix-unary path never emits them itself.
type UnaryOp int

const (
	Negate UnaryOp = iota
	LogNot
	BitNot
	PreInc
	PreDec
	PostInc
	PostDec
)

var unaryOpNames = [...]string{"-", "!", "~", "++", "--", "++", "--"}

func (u UnaryOp) String() string {
	if int(u) < 0 || int(u) >= len(unaryOpNames) {
		return "?"
	}
	return unaryOpNames[u]
}

// ---- Structural nodes ----

// Program is the root: a sequence of top-level Function/VariableDecl
// nodes, in source order.
type Program struct {
	Position
	Decls []Node
}

func (*Program) Kind() NodeKind   { return KindProgram }
func (n *Program) Pos() Position  { return n.Position }

// Function is a top-level function declaration or definition.
type Function struct {
	Position
	Name       string
	ReturnType DataType
	Params     *ParamList // never nil; zero Params for an empty list
	Body       *CompoundStmt // nil for a bodyless declaration
}

func (*Function) Kind() NodeKind  { return KindFunction }
func (n *Function) Pos() Position { return n.Position }

// ParamList holds a function's formal parameters, left to right.
type ParamList struct {
	Position
	Params []*Parameter
}

func (*ParamList) Kind() NodeKind  { return KindParamList }
func (n *ParamList) Pos() Position { return n.Position }

// Parameter is one formal parameter. Name is empty when the grammar's
// optional identifier was omitted.
type Parameter struct {
	Position
	Type    DataType
	Name    string
	IsArray bool
}

func (*Parameter) Kind() NodeKind  { return KindParameter }
func (n *Parameter) Pos() Position { return n.Position }

// CompoundStmt is a `{ ... }` block: a sequence of statements.
type CompoundStmt struct {
	Position
	Stmts []Stmt
}

func (*CompoundStmt) Kind() NodeKind  { return KindCompoundStmt }
func (n *CompoundStmt) Pos() Position { return n.Position }
func (*CompoundStmt) stmtNode()       {}

// VariableDecl declares (and optionally initializes) a variable, either at
// top level or inside a compound statement.
type VariableDecl struct {
	Position
	Name      string
	Type      DataType
	IsArray   bool
	ArraySize int // 0 when unspecified or the declarator has no brackets
	Init      Expr // nil when there is no initializer
}

func (*VariableDecl) Kind() NodeKind  { return KindVariableDecl }
func (n *VariableDecl) Pos() Position { return n.Position }
func (*VariableDecl) stmtNode()       {}

// IfStmt is `if (cond) then [else else]`.
type IfStmt struct {
	Position
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else-branch
}

func (*IfStmt) Kind() NodeKind  { return KindIfStmt }
func (n *IfStmt) Pos() Position { return n.Position }
func (*IfStmt) stmtNode()       {}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Position
	Cond Expr
	Body Stmt
}

func (*WhileStmt) Kind() NodeKind  { return KindWhileStmt }
func (n *WhileStmt) Pos() Position { return n.Position }
func (*WhileStmt) stmtNode()       {}

// ReturnStmt is `return [expr] ;`. Value is nil for a bare return.
type ReturnStmt struct {
	Position
	Value Expr
}

func (*ReturnStmt) Kind() NodeKind  { return KindReturnStmt }
func (n *ReturnStmt) Pos() Position { return n.Position }
func (*ReturnStmt) stmtNode()       {}

// ExprStmt is `[expr] ;`. Expr is nil for a bare `;`.
type ExprStmt struct {
	Position
	Expr Expr
}

func (*ExprStmt) Kind() NodeKind  { return KindExprStmt }
func (n *ExprStmt) Pos() Position { return n.Position }
func (*ExprStmt) stmtNode()       {}

// ---- Expression nodes ----

// AssignExpr is `target = value`, right-associative.
type AssignExpr struct {
	Position
	Target Expr
	Value  Expr
}

func (*AssignExpr) Kind() NodeKind  { return KindAssignExpr }
func (n *AssignExpr) Pos() Position { return n.Position }
func (*AssignExpr) exprNode()       {}

// BinaryExpr is a left-associative binary operator application.
type BinaryExpr struct {
	Position
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*BinaryExpr) Kind() NodeKind  { return KindBinaryExpr }
func (n *BinaryExpr) Pos() Position { return n.Position }
func (*BinaryExpr) exprNode()       {}

// UnaryExpr is a prefix or postfix unary operator application.
type UnaryExpr struct {
	Position
	Op      UnaryOp
	Operand Expr
}

func (*UnaryExpr) Kind() NodeKind  { return KindUnaryExpr }
func (n *UnaryExpr) Pos() Position { return n.Position }
func (*UnaryExpr) exprNode()       {}

// CallExpr is `callee ( args )`. Args is nil when the call has no
// arguments.
type CallExpr struct {
	Position
	Callee Expr
	Args   *ArgList
}

func (*CallExpr) Kind() NodeKind  { return KindCallExpr }
func (n *CallExpr) Pos() Position { return n.Position }
func (*CallExpr) exprNode()       {}

// ArgList holds a call's argument expressions, left to right.
type ArgList struct {
	Position
	Args []Expr
}

func (*ArgList) Kind() NodeKind  { return KindArgList }
func (n *ArgList) Pos() Position { return n.Position }

// SubscriptExpr is `array [ index ]`.
type SubscriptExpr struct {
	Position
	Array Expr
	Index Expr
}

func (*SubscriptExpr) Kind() NodeKind  { return KindSubscriptExpr }
func (n *SubscriptExpr) Pos() Position { return n.Position }
func (*SubscriptExpr) exprNode()       {}

// Identifier is a name reference.
type Identifier struct {
	Position
	Name string
}

func (*Identifier) Kind() NodeKind  { return KindIdentifier }
func (n *Identifier) Pos() Position { return n.Position }
func (*Identifier) exprNode()       {}

// Integer is a decoded integer literal.
type Integer struct {
	Position
	Value int
}

func (*Integer) Kind() NodeKind  { return KindInteger }
func (n *Integer) Pos() Position { return n.Position }
func (*Integer) exprNode()       {}

// Character is a decoded character literal.
type Character struct {
	Position
	Value byte
}

func (*Character) Kind() NodeKind  { return KindCharacter }
func (n *Character) Pos() Position { return n.Position }
func (*Character) exprNode()       {}

// String is a string literal with its raw (undecoded) content.
type String struct {
	Position
	Value string
}

func (*String) Kind() NodeKind  { return KindString }
func (n *String) Pos() Position { return n.Position }
func (*String) exprNode()       {}
