package ast

type NodeType string

const (
	NodeApplication  NodeType = "Application"
	NodeFunctionType NodeType = "FunctionType"
	NodeLambda       NodeType = "Lambda"
	NodeLetBinding   NodeType = "LetBinding"
	NodeUniverse     NodeType = "Universe"
	NodeVariable     NodeType = "Variable"
)

// Level is a universe index. U(0) is the universe of small types, U(1)
// contains U(0), and so on.
type Level uint32

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Expr is the closed set of term forms. Types and terms share one syntax:
// a type is an Expr inhabiting some universe.
type Expr interface {
	Node
	exprNode()
}

type exprMarker struct{}

func (exprMarker) exprNode() {}

// Application

type Application struct {
	nodeImpl
	exprMarker

	Fn  Expr `json:"fn"`
	Arg Expr `json:"arg"`
}

func NewApplication(fn, arg Expr) *Application {
	return &Application{nodeImpl: newNodeImpl(NodeApplication), Fn: fn, Arg: arg}
}

// FunctionType is the non-dependent function type former: the codomain may
// not mention the bound argument.

type FunctionType struct {
	nodeImpl
	exprMarker

	Domain   Expr `json:"domain"`
	Codomain Expr `json:"codomain"`
}

func NewFunctionType(domain, codomain Expr) *FunctionType {
	return &FunctionType{nodeImpl: newNodeImpl(NodeFunctionType), Domain: domain, Codomain: codomain}
}

// Lambda

type Lambda struct {
	nodeImpl
	exprMarker

	Param string `json:"param"`
	Body  Expr   `json:"body"`
}

func NewLambda(param string, body Expr) *Lambda {
	return &Lambda{nodeImpl: newNodeImpl(NodeLambda), Param: param, Body: body}
}

// LetBinding is an eager, non-recursive let: the bound value is evaluated
// before the body and is not in scope within its own definition.

type LetBinding struct {
	nodeImpl
	exprMarker

	Name  string `json:"name"`
	Value Expr   `json:"value"`
	Body  Expr   `json:"body"`
}

func NewLetBinding(name string, value, body Expr) *LetBinding {
	return &LetBinding{nodeImpl: newNodeImpl(NodeLetBinding), Name: name, Value: value, Body: body}
}

// Universe

type Universe struct {
	nodeImpl
	exprMarker

	Level Level `json:"level"`
}

func NewUniverse(level Level) *Universe {
	return &Universe{nodeImpl: newNodeImpl(NodeUniverse), Level: level}
}

// Variable

type Variable struct {
	nodeImpl
	exprMarker

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}
