package scim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/scim-resources/pkg/scim"
)

func TestFilterExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    scim.FilterExpression
		expected string
	}{
		{
			name: "Equal operator",
			input: scim.FilterComparison{
				Attribute: "userName",
				Operator:  scim.FilterOperatorEqual,
				Value:     "jdoe",
			},
			expected: `userName eq "jdoe"`,
		},
		{
			name: "Not equal operator",
			input: scim.FilterComparison{
				Attribute: "userType",
				Operator:  scim.FilterOperatorNotEqual,
				Value:     "employee",
			},
			expected: `userType ne "employee"`,
		},
		{
			name: "Starts with operator",
			input: scim.FilterComparison{
				Attribute: "displayName",
				Operator:  scim.FilterOperatorStartsWith,
				Value:     "Tour",
			},
			expected: `displayName sw "Tour"`,
		},
		{
			name: "Greater than operator",
			input: scim.FilterComparison{
				Attribute: "meta.lastModified",
				Operator:  scim.FilterOperatorGreaterThan,
				Value:     "2011-05-13T04:42:34Z",
			},
			expected: `meta.lastModified gt "2011-05-13T04:42:34Z"`,
		},
		{
			name:     "Present operator",
			input:    scim.FilterPresent{Attribute: "title"},
			expected: `title pr`,
		},
		{
			name: "Negated expression",
			input: scim.FilterLogicalGroupNot{
				Expression: scim.FilterComparison{
					Attribute: "userName",
					Operator:  scim.FilterOperatorEqual,
					Value:     "jdoe",
				},
			},
			expected: `not userName eq "jdoe"`,
		},
		{
			name: "And group",
			input: scim.FilterLogicalGroupAnd{
				Expressions: []scim.FilterExpression{
					scim.FilterComparison{
						Attribute: "userType",
						Operator:  scim.FilterOperatorEqual,
						Value:     "Employee",
					},
					scim.FilterPresent{Attribute: "emails"},
				},
			},
			expected: `(userType eq "Employee" and emails pr)`,
		},
		{
			name: "Or group",
			input: scim.FilterLogicalGroupOr{
				Expressions: []scim.FilterExpression{
					scim.FilterComparison{
						Attribute: "userType",
						Operator:  scim.FilterOperatorEqual,
						Value:     "Employee",
					},
					scim.FilterComparison{
						Attribute: "userType",
						Operator:  scim.FilterOperatorEqual,
						Value:     "Intern",
					},
				},
			},
			expected: `(userType eq "Employee" or userType eq "Intern")`,
		},
		{
			name:     "Null expression",
			input:    scim.NullFilterExpression{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestSearchRequestWithFilter(t *testing.T) {
	t.Run("Should set the filter string from an expression", func(t *testing.T) {
		request := scim.NewSearchRequest().WithFilter(scim.FilterComparison{
			Attribute: "userName",
			Operator:  scim.FilterOperatorEqual,
			Value:     "jdoe",
		})

		if assert.NotNil(t, request.Filter) {
			assert.Equal(t, `userName eq "jdoe"`, *request.Filter)
		}
	})

	t.Run("Should leave the filter unset for a null expression", func(t *testing.T) {
		request := scim.NewSearchRequest().WithFilter(scim.NullFilterExpression{})
		assert.Nil(t, request.Filter)
	})

	t.Run("Should declare the search request schema with first-page defaults", func(t *testing.T) {
		request := scim.NewSearchRequest()

		assert.Equal(t, []string{scim.SearchRequestSchema}, request.Schemas)
		assert.Equal(t, int64(1), request.StartIndex)
		if assert.NotNil(t, request.Count) {
			assert.Equal(t, int64(100), *request.Count)
		}
	})
}
