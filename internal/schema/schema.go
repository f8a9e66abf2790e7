// Package schema exposes a static description of every model served or
// accepted by the API, keyed by lowercase entity name. The table is written by
// hand and built once at init, so the admin viewer never depends on runtime
// reflection of the Go types.
package schema

// Field describes a single property of an entity.
type Field struct {
	Type        string `json:"type"`
	Format      string `json:"format,omitempty"`
	Items       *Field `json:"items,omitempty"`
	Default     any    `json:"default,omitempty"`
	Minimum     *int   `json:"minimum,omitempty"`
	Maximum     *int   `json:"maximum,omitempty"`
	Description string `json:"description,omitempty"`
}

// Definition is the object schema for one entity.
type Definition struct {
	Title      string           `json:"title"`
	Type       string           `json:"type"`
	Properties map[string]Field `json:"properties"`
	Required   []string         `json:"required,omitempty"`
}

func str() Field { return Field{Type: "string"} }

func strFmt(format string) Field { return Field{Type: "string", Format: format} }

func strList() Field {
	items := str()
	return Field{Type: "array", Items: &items}
}
func intPtr(n int) *int { return &n }

var catalog = map[string]Definition{
	"inquiry": {
		Title: "Inquiry",
		Type:  "object",
		Properties: map[string]Field{
			"name":    {Type: "string", Description: "Full name"},
			"email":   strFmt("email"),
			"phone":   str(),
			"subject": str(),
			"message": {Type: "string", Description: "Message body"},
			"service": {Type: "string", Description: "Service of interest"},
			"source":  {Type: "string", Description: "Lead source, e.g., website, whatsapp"},
		},
		Required: []string{"name", "email", "message"},
	},
	"jobapplication": {
		Title: "Jobapplication",
		Type:  "object",
		Properties: map[string]Field{
			"name":          str(),
			"email":         strFmt("email"),
			"phone":         str(),
			"role":          {Type: "string", Description: "Role applied for"},
			"resume_url":    {Type: "string", Format: "uri", Description: "Link to resume (Drive/Dropbox)"},
			"portfolio_url": strFmt("uri"),
			"cover_letter":  str(),
		},
		Required: []string{"name", "email", "role"},
	},
	"service": {
		Title: "Service",
		Type:  "object",
		Properties: map[string]Field{
			"name":     str(),
			"slug":     str(),
			"summary":  str(),
			"features": strList(),
			"icon":     {Type: "string", Description: "Icon name from lucide-react"},
		},
		Required: []string{"name", "slug", "summary"},
	},
	"project": {
		Title: "Project",
		Type:  "object",
		Properties: map[string]Field{
			"title":        str(),
			"slug":         str(),
			"summary":      str(),
			"results":      str(),
			"before_image": strFmt("uri"),
			"after_image":  strFmt("uri"),
			"tags":         strList(),
		},
		Required: []string{"title", "slug", "summary"},
	},
	"testimonial": {
		Title: "Testimonial",
		Type:  "object",
		Properties: map[string]Field{
			"author":  str(),
			"role":    str(),
			"company": str(),
			"quote":   str(),
			"rating":  {Type: "integer", Default: 5, Minimum: intPtr(1), Maximum: intPtr(5)},
		},
		Required: []string{"author", "quote"},
	},
	"blogpost": {
		Title: "Blogpost",
		Type:  "object",
		Properties: map[string]Field{
			"title":   str(),
			"slug":    str(),
			"excerpt": str(),
			"content": str(),
			"tags":    strList(),
			"author":  {Type: "string", Default: "Team"},
		},
		Required: []string{"title", "slug", "content"},
	},
	"opening": {
		Title: "Opening",
		Type:  "object",
		Properties: map[string]Field{
			"title":        str(),
			"department":   str(),
			"location":     {Type: "string", Default: "Remote"},
			"type":         {Type: "string", Default: "Full-time", Description: "Employment type"},
			"description":  str(),
			"requirements": strList(),
		},
		Required: []string{"title", "department"},
	},
}

// Catalog returns the schema table for the admin viewer. Treat as read-only.
func Catalog() map[string]Definition {
	return catalog
}
