package scim

import (
	"fmt"
	"strings"
)

// FilterOperator is a SCIM filter comparison operator.
type FilterOperator string

const (
	FilterOperatorEqual              FilterOperator = "eq"
	FilterOperatorNotEqual           FilterOperator = "ne"
	FilterOperatorContains           FilterOperator = "co"
	FilterOperatorStartsWith         FilterOperator = "sw"
	FilterOperatorEndsWith           FilterOperator = "ew"
	FilterOperatorGreaterThan        FilterOperator = "gt"
	FilterOperatorGreaterThanOrEqual FilterOperator = "ge"
	FilterOperatorLessThan           FilterOperator = "lt"
	FilterOperatorLessThanOrEqual    FilterOperator = "le"
)

// FilterExpression builds a SCIM filter string for a SearchRequest or list
// query. Expressions are combined, never evaluated locally.
type FilterExpression interface {
	String() string
}

// NullFilterExpression is a placeholder for an empty/nil filter expression.
type NullFilterExpression struct{}

func (f NullFilterExpression) String() string {
	return ""
}

// FilterComparison compares an attribute against a value.
type FilterComparison struct {
	Attribute string
	Operator  FilterOperator
	Value     string
}

func (f FilterComparison) String() string {
	return fmt.Sprintf("%s %s \"%s\"", f.Attribute, f.Operator, f.Value)
}

// FilterPresent matches resources where the attribute has a value.
type FilterPresent struct {
	Attribute string
}

func (f FilterPresent) String() string {
	return f.Attribute + " pr"
}

// FilterLogicalGroupAnd joins expressions with "and".
type FilterLogicalGroupAnd struct {
	Expressions []FilterExpression
}

func (f FilterLogicalGroupAnd) String() string {
	return joinExpressions(f.Expressions, " and ")
}

// FilterLogicalGroupOr joins expressions with "or".
type FilterLogicalGroupOr struct {
	Expressions []FilterExpression
}

func (f FilterLogicalGroupOr) String() string {
	return joinExpressions(f.Expressions, " or ")
}

// FilterLogicalGroupNot negates an expression.
type FilterLogicalGroupNot struct {
	Expression FilterExpression
}

func (f FilterLogicalGroupNot) String() string {
	return "not " + f.Expression.String()
}

func joinExpressions(exprs []FilterExpression, sep string) string {
	exprStrings := make([]string, len(exprs))
	for i, expr := range exprs {
		exprStrings[i] = expr.String()
	}

	return fmt.Sprintf("(%s)", strings.Join(exprStrings, sep))
}
