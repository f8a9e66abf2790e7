package content

// Collection names in the backing store. Singular by convention: the admin
// tooling derives the collection from the lowercase model name.
const (
	CollectionService     = "service"
	CollectionProject     = "project"
	CollectionTestimonial = "testimonial"
	CollectionBlogpost    = "blogpost"
	CollectionOpening     = "opening"
)

// Service is a service offering shown on the marketing site.
type Service struct {
	Name     string   `bson:"name" json:"name" validate:"required"`
	Slug     string   `bson:"slug" json:"slug" validate:"required"`
	Summary  string   `bson:"summary" json:"summary" validate:"required"`
	Features []string `bson:"features" json:"features"`
	Icon     string   `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Project is a portfolio case study.
type Project struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Slug        string   `bson:"slug" json:"slug" validate:"required"`
	Summary     string   `bson:"summary" json:"summary" validate:"required"`
	Results     string   `bson:"results,omitempty" json:"results,omitempty"`
	BeforeImage string   `bson:"before_image,omitempty" json:"before_image,omitempty" validate:"omitempty,url"`
	AfterImage  string   `bson:"after_image,omitempty" json:"after_image,omitempty" validate:"omitempty,url"`
	Tags        []string `bson:"tags" json:"tags"`
}

// Testimonial is a client quote. Rating defaults to 5 and must stay in [1,5].
type Testimonial struct {
	Author  string `bson:"author" json:"author" validate:"required"`
	Role    string `bson:"role,omitempty" json:"role,omitempty"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`
	Quote   string `bson:"quote" json:"quote" validate:"required"`
	Rating  int    `bson:"rating" json:"rating" default:"5" validate:"min=1,max=5"`
}

// Blogpost is a published article. Author defaults to "Team".
type Blogpost struct {
	Title   string   `bson:"title" json:"title" validate:"required"`
	Slug    string   `bson:"slug" json:"slug" validate:"required"`
	Excerpt string   `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	Content string   `bson:"content" json:"content" validate:"required"`
	Tags    []string `bson:"tags" json:"tags"`
	Author  string   `bson:"author" json:"author" default:"Team"`
}

// Opening is a job opening on the careers page.
type Opening struct {
	Title        string   `bson:"title" json:"title" validate:"required"`
	Department   string   `bson:"department" json:"department" validate:"required"`
	Location     string   `bson:"location" json:"location" default:"Remote"`
	Type         string   `bson:"type" json:"type" default:"Full-time"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Requirements []string `bson:"requirements" json:"requirements"`
}
