package ast

import (
	"encoding/json"
	"fmt"
	"math"
)

// MarshalExpr renders a term as tagged JSON: every node is an object whose
// "type" field names its form.
func MarshalExpr(e Expr) ([]byte, error) {
	return json.Marshal(e)
}

// UnmarshalExpr parses the tagged JSON form produced by MarshalExpr.
func UnmarshalExpr(data []byte) (Expr, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode expr: %w", err)
	}
	return DecodeExpr(raw)
}

// DecodeExpr rebuilds a term from its map form, discriminating on the
// "type" field. The maps may come from JSON or YAML decoding.
func DecodeExpr(node map[string]any) (Expr, error) {
	typ, _ := node["type"].(string)
	if typ == "" {
		return nil, fmt.Errorf("decode expr: missing type field")
	}
	e, err := decodeExprNode(node, NodeType(typ))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", typ, err)
	}
	return e, nil
}

func decodeExprNode(node map[string]any, typ NodeType) (Expr, error) {
	switch typ {
	case NodeApplication:
		fn, err := decodeChild(node, "fn")
		if err != nil {
			return nil, err
		}
		arg, err := decodeChild(node, "arg")
		if err != nil {
			return nil, err
		}
		return NewApplication(fn, arg), nil
	case NodeFunctionType:
		domain, err := decodeChild(node, "domain")
		if err != nil {
			return nil, err
		}
		codomain, err := decodeChild(node, "codomain")
		if err != nil {
			return nil, err
		}
		return NewFunctionType(domain, codomain), nil
	case NodeLambda:
		param, err := requireString(node, "param")
		if err != nil {
			return nil, err
		}
		body, err := decodeChild(node, "body")
		if err != nil {
			return nil, err
		}
		return NewLambda(param, body), nil
	case NodeLetBinding:
		name, err := requireString(node, "name")
		if err != nil {
			return nil, err
		}
		value, err := decodeChild(node, "value")
		if err != nil {
			return nil, err
		}
		body, err := decodeChild(node, "body")
		if err != nil {
			return nil, err
		}
		return NewLetBinding(name, value, body), nil
	case NodeUniverse:
		level, err := decodeLevel(node["level"])
		if err != nil {
			return nil, err
		}
		return NewUniverse(level), nil
	case NodeVariable:
		name, err := requireString(node, "name")
		if err != nil {
			return nil, err
		}
		return NewVariable(name), nil
	default:
		return nil, fmt.Errorf("unknown node type")
	}
}

func decodeChild(node map[string]any, field string) (Expr, error) {
	child, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("field %s: expected object, got %T", field, node[field])
	}
	return DecodeExpr(child)
}

func requireString(node map[string]any, field string) (string, error) {
	s, ok := node[field].(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", field, node[field])
	}
	return s, nil
}

func decodeLevel(value any) (Level, error) {
	switch v := value.(type) {
	case float64:
		if v < 0 || v > math.MaxUint32 || v != math.Trunc(v) {
			return 0, fmt.Errorf("field level: expected non-negative integer, got %v", v)
		}
		return Level(v), nil
	case int:
		if v < 0 || int64(v) > math.MaxUint32 {
			return 0, fmt.Errorf("field level: expected non-negative integer, got %d", v)
		}
		return Level(v), nil
	case int64:
		if v < 0 || v > math.MaxUint32 {
			return 0, fmt.Errorf("field level: expected non-negative integer, got %d", v)
		}
		return Level(v), nil
	case json.Number:
		i, err := v.Int64()
		if err != nil || i < 0 || i > math.MaxUint32 {
			return 0, fmt.Errorf("field level: expected non-negative integer, got %s", v)
		}
		return Level(i), nil
	default:
		return 0, fmt.Errorf("field level: expected non-negative integer, got %T", value)
	}
}
