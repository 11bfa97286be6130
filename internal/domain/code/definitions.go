package code

import "strings"

// Group labels the section of the table a code is declared in.
type Group string

const (
	GroupHTTP     Group = "http"
	GroupSuccess  Group = "success"
	GroupBusiness Group = "business"
)

// ParseGroup resolves a group label, case-insensitively.
func ParseGroup(s string) (Group, bool) {
	switch g := Group(strings.ToLower(strings.TrimSpace(s))); g {
	case GroupHTTP, GroupSuccess, GroupBusiness:
		return g, true
	default:
		return "", false
	}
}

// Definition is one row of the status code table.
type Definition struct {
	Name        string     `json:"name"`
	Value       StatusCode `json:"value"`
	Group       Group      `json:"group"`
	Description string     `json:"description"`
}

// definitions is the table in declaration order. Aliased values appear once per name.
var definitions = []Definition{
	{Name: "HTTP_OK", Value: HTTPOK, Group: GroupHTTP, Description: "OK"},
	{Name: "HTTP_CREATED", Value: HTTPCreated, Group: GroupHTTP, Description: "Created"},
	{Name: "HTTP_BAD_REQUEST", Value: HTTPBadRequest, Group: GroupHTTP, Description: "Bad request"},
	{Name: "HTTP_UNAUTHORIZED", Value: HTTPUnauthorized, Group: GroupHTTP, Description: "Unauthorized"},
	{Name: "HTTP_FORBIDDEN", Value: HTTPForbidden, Group: GroupHTTP, Description: "Forbidden"},
	{Name: "HTTP_NOT_FOUND", Value: HTTPNotFound, Group: GroupHTTP, Description: "Not found"},
	{Name: "HTTP_INTERNAL_ERROR", Value: HTTPInternalError, Group: GroupHTTP, Description: "Internal server error"},

	{Name: "SUCCESS", Value: Success, Group: GroupSuccess, Description: "Success"},
	{Name: "CREATED", Value: Created, Group: GroupSuccess, Description: "Created"},
	{Name: "ACCEPTED", Value: Accepted, Group: GroupSuccess, Description: "Accepted"},

	{Name: "BAD_REQUEST", Value: BadRequest, Group: GroupBusiness, Description: "Bad request"},
	{Name: "VALIDATION_ERROR", Value: ValidationError, Group: GroupBusiness, Description: "Validation failed"},
	{Name: "PARAM_ERROR", Value: ParamError, Group: GroupBusiness, Description: "Invalid parameter"},
	{Name: "UNAUTHORIZED", Value: Unauthorized, Group: GroupBusiness, Description: "Authentication required"},
	{Name: "TOKEN_EXPIRED", Value: TokenExpired, Group: GroupBusiness, Description: "Token has expired"},
	{Name: "TOKEN_INVALID", Value: TokenInvalid, Group: GroupBusiness, Description: "Token is invalid"},
	{Name: "FORBIDDEN", Value: Forbidden, Group: GroupBusiness, Description: "Forbidden"},
	{Name: "ACCESS_DENIED", Value: AccessDenied, Group: GroupBusiness, Description: "Access denied"},
	{Name: "NOT_FOUND", Value: NotFound, Group: GroupBusiness, Description: "Not found"},
	{Name: "RESOURCE_NOT_FOUND", Value: ResourceNotFound, Group: GroupBusiness, Description: "Resource not found"},
	{Name: "CONFLICT", Value: Conflict, Group: GroupBusiness, Description: "Conflict"},
	{Name: "DUPLICATE_RESOURCE", Value: DuplicateResource, Group: GroupBusiness, Description: "Resource already exists"},
	{Name: "INTERNAL_ERROR", Value: InternalError, Group: GroupBusiness, Description: "Internal server error"},
	{Name: "SERVICE_UNAVAILABLE", Value: ServiceUnavailable, Group: GroupBusiness, Description: "Service unavailable"},
	{Name: "DATABASE_ERROR", Value: DatabaseError, Group: GroupBusiness, Description: "Database error"},
	{Name: "THIRD_PARTY_ERROR", Value: ThirdPartyError, Group: GroupBusiness, Description: "Third-party service error"},
	{Name: "EXTERNAL_API_ERROR", Value: ExternalAPIError, Group: GroupBusiness, Description: "External API error"},
}

var (
	byName  = make(map[string]Definition, len(definitions))
	byValue = make(map[StatusCode]Definition, len(definitions))
)

func init() {
	for _, def := range definitions {
		byName[def.Name] = def

		// success names shadow the HTTP aliases they share a value with
		if prev, ok := byValue[def.Value]; ok && prev.Group != GroupHTTP {
			continue
		}
		byValue[def.Value] = def
	}
}

// Definitions returns a copy of the full table in declaration order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)

	return out
}

// Lookup resolves a canonical upper-snake name such as "VALIDATION_ERROR".
func Lookup(name string) (StatusCode, bool) {
	def, ok := byName[strings.ToUpper(strings.TrimSpace(name))]

	return def.Value, ok
}

// Describe returns the table row registered under name.
func Describe(name string) (Definition, bool) {
	def, ok := byName[strings.ToUpper(strings.TrimSpace(name))]

	return def, ok
}
