package scim

// Meta is the common resource metadata block. Timestamps stay as the
// provider's RFC 3339 text and version as the opaque ETag form so both
// round-trip unchanged.
type Meta struct {
	ResourceType string `json:"resourceType,omitzero"`
	Created      string `json:"created,omitzero"`
	LastModified string `json:"lastModified,omitzero"`
	Version      string `json:"version,omitzero"`
	Location     string `json:"location,omitzero"`
}

// BaseResource carries the attributes shared by every SCIM resource.
type BaseResource struct {
	Schemas    []string         `json:"schemas,omitzero"`
	ID         Optional[string] `json:"id,omitzero"`
	ExternalID Optional[string] `json:"externalId,omitzero"`
	Meta       *Meta            `json:"meta,omitzero"`
}
