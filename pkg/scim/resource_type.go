package scim

// ResourceType describes one resource type a service provider exposes.
type ResourceType struct {
	Schemas          []string          `json:"schemas,omitzero"`
	ID               Optional[string]  `json:"id,omitzero"`
	Name             string            `json:"name,omitzero"`
	Description      Optional[string]  `json:"description,omitzero"`
	Endpoint         string            `json:"endpoint,omitzero"`
	Schema           string            `json:"schema,omitzero"`
	SchemaExtensions []SchemaExtension `json:"schemaExtensions,omitzero"`
	Meta             *Meta             `json:"meta,omitzero"`
}

// SchemaExtension declares an extension schema a resource type supports.
type SchemaExtension struct {
	Schema   string `json:"schema"`
	Required bool   `json:"required"`
}
