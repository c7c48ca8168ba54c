package scim

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/openkcm/scim-resources/pkg/config"
)

// ErrCodecConfig is returned by New when the unknown-key mode has not been
// chosen explicitly.
var ErrCodecConfig = errors.New("codec configuration must set the unknown-key mode")

// Codec converts resources to and from their SCIM JSON wire form. The
// unknown-key mode is fixed at construction; callers must pick one, there is
// no implicit default.
type Codec struct {
	rejectUnknown bool
	logger        hclog.Logger
}

// New builds a Codec from an explicit configuration. In ignore mode unknown
// top-level keys are dropped and logged at warn level; in reject mode they
// fail the decode.
func New(cfg *config.Config, logger hclog.Logger) (*Codec, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if cfg == nil {
		return nil, ErrCodecConfig
	}

	err := cfg.Validate()
	if err != nil {
		return nil, ErrCodecConfig
	}

	return &Codec{
		rejectUnknown: cfg.UnknownKeys == config.UnknownKeysReject,
		logger:        logger,
	}, nil
}

// EncodeUser renders a User to its wire form. Absent attributes are omitted
// entirely; explicitly empty ones stay.
func (c *Codec) EncodeUser(user *User) ([]byte, error) {
	return encodeResource(user)
}

// EncodeGroup renders a Group to its wire form.
func (c *Codec) EncodeGroup(group *Group) ([]byte, error) {
	return encodeResource(group)
}

// EncodeResourceType renders a ResourceType to its wire form.
func (c *Codec) EncodeResourceType(resourceType *ResourceType) ([]byte, error) {
	return encodeResource(resourceType)
}

// EncodeServiceProviderConfig renders a ServiceProviderConfig to its wire form.
func (c *Codec) EncodeServiceProviderConfig(cfg *ServiceProviderConfig) ([]byte, error) {
	return encodeResource(cfg)
}

// EncodeEnterpriseUser renders a standalone extension payload.
func (c *Codec) EncodeEnterpriseUser(enterpriseUser *EnterpriseUser) ([]byte, error) {
	return encodeResource(enterpriseUser)
}

// DecodeUser parses a User document, including an enterprise extension
// flattened under its URN key.
func (c *Codec) DecodeUser(data []byte) (*User, error) {
	return decodeResource[User](c, data)
}

// DecodeGroup parses a Group document.
func (c *Codec) DecodeGroup(data []byte) (*Group, error) {
	return decodeResource[Group](c, data)
}

// DecodeResourceType parses a ResourceType document.
func (c *Codec) DecodeResourceType(data []byte) (*ResourceType, error) {
	return decodeResource[ResourceType](c, data)
}

// DecodeServiceProviderConfig parses a ServiceProviderConfig document.
func (c *Codec) DecodeServiceProviderConfig(data []byte) (*ServiceProviderConfig, error) {
	return decodeResource[ServiceProviderConfig](c, data)
}

// DecodeEnterpriseUser parses a standalone extension payload.
func (c *Codec) DecodeEnterpriseUser(data []byte) (*EnterpriseUser, error) {
	return decodeResource[EnterpriseUser](c, data)
}

// DecodeListResponse parses a page of resources of type T.
func DecodeListResponse[T any](c *Codec, data []byte) (*ListResponse[T], error) {
	return decodeResource[ListResponse[T]](c, data)
}

func encodeResource[T any](resource *T) ([]byte, error) {
	data, err := json.Marshal(resource)
	if err != nil {
		return nil, errID.Code("encode_error").Wrap(err)
	}

	return data, nil
}

func decodeResource[T any](c *Codec, data []byte) (*T, error) {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return nil, classifyDecodeError(err)
	}

	var result T

	err = c.checkTopLevelKeys(reflect.TypeOf(result), raw)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(data, &result)
	if err != nil {
		return nil, classifyDecodeError(err)
	}

	return &result, nil
}

// classifyDecodeError separates shape mismatches from unparseable input so
// the caller can tell the two apart.
func classifyDecodeError(err error) error {
	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		attribute := unmarshalTypeError.Field
		if attribute == "" {
			attribute = "(document)"
		}

		return typeMismatchErr(attribute, "JSON value "+unmarshalTypeError.Value+" does not fit the attribute")
	}

	return syntaxErr(err)
}

func (c *Codec) checkTopLevelKeys(resourceType reflect.Type, raw map[string]json.RawMessage) error {
	known := knownKeys(resourceType)

	unknown := make([]string, 0)

	for key := range raw {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)

	if c.rejectUnknown {
		return fieldErr(unknown[0], "unknown attribute")
	}

	for _, key := range unknown {
		c.logger.Warn("ignoring unknown attribute", "attribute", key)
	}

	return nil
}

// knownKeys derives the legal top-level keys from the same json struct tags
// the marshaller uses, so strictness cannot drift from the wire shape.
func knownKeys(resourceType reflect.Type) map[string]struct{} {
	keys := make(map[string]struct{})
	collectKeys(resourceType, keys)

	return keys
}

func collectKeys(structType reflect.Type, keys map[string]struct{}) {
	for i := range structType.NumField() {
		field := structType.Field(i)

		if field.Anonymous {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}

			if embedded.Kind() == reflect.Struct {
				collectKeys(embedded, keys)
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}

		keys[name] = struct{}{}
	}
}
