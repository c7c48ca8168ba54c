package scim

// EnterpriseUser is the enterprise extension composed onto a User under
// EnterpriseUserSchema. It is attached to the base resource, not inherited.
type EnterpriseUser struct {
	EmployeeNumber Optional[string] `json:"employeeNumber,omitzero"`
	CostCenter     Optional[string] `json:"costCenter,omitzero"`
	Organization   Optional[string] `json:"organization,omitzero"`
	Division       Optional[string] `json:"division,omitzero"`
	Department     Optional[string] `json:"department,omitzero"`
	Manager        *Manager         `json:"manager,omitzero"`
}

// Manager references the user's manager.
type Manager struct {
	Value       Optional[string] `json:"value,omitzero"`
	Ref         Optional[string] `json:"$ref,omitzero"`
	DisplayName Optional[string] `json:"displayName,omitzero"`
}
