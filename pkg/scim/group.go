package scim

// Group is the SCIM core Group resource.
type Group struct {
	BaseResource

	DisplayName string   `json:"displayName,omitzero"`
	Members     []Member `json:"members,omitzero"`
}

// Member is one entry of a group's members attribute. Its type, when set,
// must be one of the protocol's member kinds (User or Group).
type Member struct {
	Value   Optional[string] `json:"value,omitzero"`
	Ref     Optional[string] `json:"$ref,omitzero"`
	Display Optional[string] `json:"display,omitzero"`
	Type    Optional[string] `json:"type,omitzero"`
}
