package scim

// MultiValuedAttribute is one element of a multi-valued attribute such as
// emails or phoneNumbers. At most one element per collection may be primary.
type MultiValuedAttribute struct {
	Value   Optional[string] `json:"value,omitzero"`
	Display Optional[string] `json:"display,omitzero"`
	Type    Optional[string] `json:"type,omitzero"`
	Primary Optional[bool]   `json:"primary,omitzero"`
}

// Name holds the components of the user's real name.
type Name struct {
	Formatted       Optional[string] `json:"formatted,omitzero"`
	FamilyName      Optional[string] `json:"familyName,omitzero"`
	GivenName       Optional[string] `json:"givenName,omitzero"`
	MiddleName      Optional[string] `json:"middleName,omitzero"`
	HonorificPrefix Optional[string] `json:"honorificPrefix,omitzero"`
	HonorificSuffix Optional[string] `json:"honorificSuffix,omitzero"`
}

// Address is a physical mailing address for the user.
type Address struct {
	Formatted     Optional[string] `json:"formatted,omitzero"`
	StreetAddress Optional[string] `json:"streetAddress,omitzero"`
	Locality      Optional[string] `json:"locality,omitzero"`
	Region        Optional[string] `json:"region,omitzero"`
	PostalCode    Optional[string] `json:"postalCode,omitzero"`
	Country       Optional[string] `json:"country,omitzero"`
	Type          Optional[string] `json:"type,omitzero"`
	Primary       Optional[bool]   `json:"primary,omitzero"`
}

// GroupMembership is one group the user belongs to, as reported on the user.
type GroupMembership struct {
	Value   Optional[string] `json:"value,omitzero"`
	Ref     Optional[string] `json:"$ref,omitzero"`
	Display Optional[string] `json:"display,omitzero"`
	Type    Optional[string] `json:"type,omitzero"`
}

// User is the SCIM core User resource. The enterprise extension, when
// attached, is flattened onto the wire under its URN key.
type User struct {
	BaseResource

	UserName          string           `json:"userName,omitzero"`
	Name              *Name            `json:"name,omitzero"`
	DisplayName       Optional[string] `json:"displayName,omitzero"`
	NickName          Optional[string] `json:"nickName,omitzero"`
	ProfileURL        Optional[string] `json:"profileUrl,omitzero"`
	Title             Optional[string] `json:"title,omitzero"`
	UserType          Optional[string] `json:"userType,omitzero"`
	PreferredLanguage Optional[string] `json:"preferredLanguage,omitzero"`
	Locale            Optional[string] `json:"locale,omitzero"`
	Timezone          Optional[string] `json:"timezone,omitzero"`
	Active            Optional[bool]   `json:"active,omitzero"`
	Password          Optional[string] `json:"password,omitzero"`

	Emails           []MultiValuedAttribute `json:"emails,omitzero"`
	PhoneNumbers     []MultiValuedAttribute `json:"phoneNumbers,omitzero"`
	IMs              []MultiValuedAttribute `json:"ims,omitzero"`
	Photos           []MultiValuedAttribute `json:"photos,omitzero"`
	Addresses        []Address              `json:"addresses,omitzero"`
	Groups           []GroupMembership      `json:"groups,omitzero"`
	Entitlements     []MultiValuedAttribute `json:"entitlements,omitzero"`
	Roles            []MultiValuedAttribute `json:"roles,omitzero"`
	X509Certificates []MultiValuedAttribute `json:"x509Certificates,omitzero"`

	EnterpriseUser *EnterpriseUser `json:"urn:ietf:params:scim:schemas:extension:enterprise:2.0:User,omitzero"`
}
