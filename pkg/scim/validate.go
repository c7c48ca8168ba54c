package scim

import (
	"fmt"
	"slices"
)

// Canonical value sets from RFC 7643. Collections without a set accept any
// string.
var (
	emailTypes           = []string{"work", "home", "other"}
	phoneNumberTypes     = []string{"work", "home", "mobile", "fax", "pager", "other"}
	imTypes              = []string{"aim", "gtalk", "icq", "xmpp", "msn", "skype", "qq", "yahoo"}
	photoTypes           = []string{"photo", "thumbnail"}
	addressTypes         = []string{"work", "home", "other"}
	groupMembershipTypes = []string{"direct", "indirect"}
	memberTypes          = []string{"User", "Group"}
)

// requiredCheck ties an attribute name to whether the instance satisfies it.
type requiredCheck struct {
	attribute string
	present   bool
}

// collectionRule is the declarative description of one multi-valued
// attribute: its canonical type set (nil accepts any string) and a uniform
// view of the elements' type and primary sub-attributes.
type collectionRule struct {
	attribute string
	canonical []string
	elements  []elementView
}

type elementView struct {
	typ     Optional[string]
	primary Optional[bool]
}

func checkSchemas(schemas []string, baseURN string) error {
	if len(schemas) == 0 {
		return schemaErr("schemas must not be empty")
	}

	if !slices.Contains(schemas, baseURN) {
		return schemaErr("schemas must include %s", baseURN)
	}

	return nil
}

func checkRequired(checks []requiredCheck) error {
	for _, check := range checks {
		if !check.present {
			return fieldErr(check.attribute, "required attribute is missing or empty")
		}
	}

	return nil
}

// checkCollections enforces primary uniqueness across every collection, then
// canonical values. The two passes keep the violation order fixed.
func checkCollections(rules []collectionRule) error {
	for _, rule := range rules {
		primaries := 0

		for _, element := range rule.elements {
			if element.primary.Or(false) {
				primaries++
			}
		}

		if primaries > 1 {
			return fieldErr(rule.attribute, "more than one element marked primary")
		}
	}

	for _, rule := range rules {
		if rule.canonical == nil {
			continue
		}

		for _, element := range rule.elements {
			value, ok := element.typ.Value()
			if !ok {
				continue
			}

			if !slices.Contains(rule.canonical, value) {
				return fieldErr(rule.attribute+".type", fmt.Sprintf("%q is not a canonical value", value))
			}
		}
	}

	return nil
}

func mvaElements(items []MultiValuedAttribute) []elementView {
	elements := make([]elementView, len(items))
	for i, item := range items {
		elements[i] = elementView{typ: item.Type, primary: item.Primary}
	}

	return elements
}

func addressElements(items []Address) []elementView {
	elements := make([]elementView, len(items))
	for i, item := range items {
		elements[i] = elementView{typ: item.Type, primary: item.Primary}
	}

	return elements
}

func groupMembershipElements(items []GroupMembership) []elementView {
	elements := make([]elementView, len(items))
	for i, item := range items {
		elements[i] = elementView{typ: item.Type}
	}

	return elements
}

func memberElements(items []Member) []elementView {
	elements := make([]elementView, len(items))
	for i, item := range items {
		elements[i] = elementView{typ: item.Type}
	}

	return elements
}

// ValidateUser checks a User against the core schema: schemas declaration,
// enterprise-extension consistency, required attributes, primary uniqueness,
// and canonical values. An attached enterprise extension is validated too.
func ValidateUser(user *User) error {
	err := checkSchemas(user.Schemas, UserSchema)
	if err != nil {
		return err
	}

	declared := slices.Contains(user.Schemas, EnterpriseUserSchema)
	if declared && user.EnterpriseUser == nil {
		return schemaErr("schemas declare %s but no extension payload is attached", EnterpriseUserSchema)
	}

	if !declared && user.EnterpriseUser != nil {
		return schemaErr("extension payload attached but %s is not declared in schemas", EnterpriseUserSchema)
	}

	err = checkRequired([]requiredCheck{
		{"userName", user.UserName != ""},
	})
	if err != nil {
		return err
	}

	err = checkCollections([]collectionRule{
		{"emails", emailTypes, mvaElements(user.Emails)},
		{"phoneNumbers", phoneNumberTypes, mvaElements(user.PhoneNumbers)},
		{"ims", imTypes, mvaElements(user.IMs)},
		{"photos", photoTypes, mvaElements(user.Photos)},
		{"addresses", addressTypes, addressElements(user.Addresses)},
		{"groups", groupMembershipTypes, groupMembershipElements(user.Groups)},
		{"entitlements", nil, mvaElements(user.Entitlements)},
		{"roles", nil, mvaElements(user.Roles)},
		{"x509Certificates", nil, mvaElements(user.X509Certificates)},
	})
	if err != nil {
		return err
	}

	if user.EnterpriseUser != nil {
		return ValidateEnterpriseUser(user.EnterpriseUser)
	}

	return nil
}

// ValidateEnterpriseUser checks the enterprise extension payload. Every
// top-level field is required.
func ValidateEnterpriseUser(enterpriseUser *EnterpriseUser) error {
	return checkRequired([]requiredCheck{
		{"employeeNumber", enterpriseUser.EmployeeNumber.Or("") != ""},
		{"costCenter", enterpriseUser.CostCenter.Or("") != ""},
		{"organization", enterpriseUser.Organization.Or("") != ""},
		{"division", enterpriseUser.Division.Or("") != ""},
		{"department", enterpriseUser.Department.Or("") != ""},
		{"manager", enterpriseUser.Manager != nil},
	})
}

// ValidateGroup checks a Group: schemas declaration, required attributes,
// and that each member's type is one of the protocol's member kinds.
func ValidateGroup(group *Group) error {
	err := checkSchemas(group.Schemas, GroupSchema)
	if err != nil {
		return err
	}

	err = checkRequired([]requiredCheck{
		{"id", group.ID.Or("") != ""},
		{"displayName", group.DisplayName != ""},
	})
	if err != nil {
		return err
	}

	return checkCollections([]collectionRule{
		{"members", memberTypes, memberElements(group.Members)},
	})
}

// ValidateResourceType checks a ResourceType descriptor.
func ValidateResourceType(resourceType *ResourceType) error {
	err := checkSchemas(resourceType.Schemas, ResourceTypeSchema)
	if err != nil {
		return err
	}

	err = checkRequired([]requiredCheck{
		{"name", resourceType.Name != ""},
		{"endpoint", resourceType.Endpoint != ""},
		{"schema", resourceType.Schema != ""},
	})
	if err != nil {
		return err
	}

	for _, extension := range resourceType.SchemaExtensions {
		if extension.Schema == "" {
			return fieldErr("schemaExtensions.schema", "required attribute is missing or empty")
		}
	}

	return nil
}

// ValidateServiceProviderConfig checks a ServiceProviderConfig descriptor:
// every feature block must be present and at least one authentication scheme
// declared.
func ValidateServiceProviderConfig(config *ServiceProviderConfig) error {
	err := checkSchemas(config.Schemas, ServiceProviderConfigSchema)
	if err != nil {
		return err
	}

	err = checkRequired([]requiredCheck{
		{"patch", config.Patch != nil},
		{"bulk", config.Bulk != nil},
		{"filter", config.Filter != nil},
		{"changePassword", config.ChangePassword != nil},
		{"sort", config.Sort != nil},
		{"etag", config.Etag != nil},
		{"authenticationSchemes", len(config.AuthenticationSchemes) > 0},
	})
	if err != nil {
		return err
	}

	for _, scheme := range config.AuthenticationSchemes {
		if scheme.Name == "" {
			return fieldErr("authenticationSchemes.name", "required attribute is missing or empty")
		}
	}

	return nil
}
