package scim

import (
	"slices"

	"github.com/google/uuid"
)

// NewUser returns a User with the core schema declared, ready for the caller
// to populate before validation.
func NewUser(userName string) *User {
	return &User{
		BaseResource: BaseResource{Schemas: []string{UserSchema}},
		UserName:     userName,
	}
}

// NewGroup returns a Group with the core schema declared.
func NewGroup(displayName string) *Group {
	return &Group{
		BaseResource: BaseResource{Schemas: []string{GroupSchema}},
		DisplayName:  displayName,
	}
}

// NewResourceType returns a ResourceType descriptor with its schema declared.
func NewResourceType(name, endpoint, schema string) *ResourceType {
	return &ResourceType{
		Schemas:  []string{ResourceTypeSchema},
		Name:     name,
		Endpoint: endpoint,
		Schema:   schema,
	}
}

// NewServiceProviderConfig returns a ServiceProviderConfig with its schema
// declared and every feature block present but unsupported.
func NewServiceProviderConfig() *ServiceProviderConfig {
	return &ServiceProviderConfig{
		Schemas:        []string{ServiceProviderConfigSchema},
		Patch:          &Supported{},
		Bulk:           &Bulk{},
		Filter:         &Filter{},
		ChangePassword: &Supported{},
		Sort:           &Supported{},
		Etag:           &Supported{},
	}
}

// AttachEnterpriseUser attaches the enterprise extension and declares its URN
// in schemas, keeping the two in sync.
func (u *User) AttachEnterpriseUser(enterpriseUser *EnterpriseUser) {
	u.EnterpriseUser = enterpriseUser

	if !slices.Contains(u.Schemas, EnterpriseUserSchema) {
		u.Schemas = append(u.Schemas, EnterpriseUserSchema)
	}
}

// GenerateID mints a resource identifier for callers acting as the service
// provider.
func GenerateID() string {
	return uuid.NewString()
}
