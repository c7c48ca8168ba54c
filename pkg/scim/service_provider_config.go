package scim

// ServiceProviderConfig describes the provider's supported protocol features.
type ServiceProviderConfig struct {
	Schemas               []string               `json:"schemas,omitzero"`
	DocumentationURI      Optional[string]       `json:"documentationUri,omitzero"`
	Patch                 *Supported             `json:"patch,omitzero"`
	Bulk                  *Bulk                  `json:"bulk,omitzero"`
	Filter                *Filter                `json:"filter,omitzero"`
	ChangePassword        *Supported             `json:"changePassword,omitzero"`
	Sort                  *Supported             `json:"sort,omitzero"`
	Etag                  *Supported             `json:"etag,omitzero"`
	AuthenticationSchemes []AuthenticationScheme `json:"authenticationSchemes,omitzero"`
	Meta                  *Meta                  `json:"meta,omitzero"`
}

// Supported is a feature block carrying only a supported flag.
type Supported struct {
	Supported bool `json:"supported"`
}

// Bulk carries the bulk-operation limits.
type Bulk struct {
	Supported      bool  `json:"supported"`
	MaxOperations  int64 `json:"maxOperations"`
	MaxPayloadSize int64 `json:"maxPayloadSize"`
}

// Filter carries the filtering limits.
type Filter struct {
	Supported  bool  `json:"supported"`
	MaxResults int64 `json:"maxResults"`
}

// AuthenticationScheme describes one supported authentication mechanism.
type AuthenticationScheme struct {
	Name             string `json:"name,omitzero"`
	Description      string `json:"description,omitzero"`
	SpecURI          string `json:"specUri,omitzero"`
	DocumentationURI string `json:"documentationUri,omitzero"`
}
