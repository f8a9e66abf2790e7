package submissions

// Collection names for lead-capture documents. Submissions are sink-only:
// inserted here, never read back through this API.
const (
	CollectionInquiry        = "inquiry"
	CollectionJobapplication = "jobapplication"
)

// Inquiry is a general contact-form submission. Binding tags reject invalid
// payloads at the HTTP boundary, before the service runs.
type Inquiry struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Email   string `bson:"email" json:"email" binding:"required,email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string `bson:"message" json:"message" binding:"required"`
	Service string `bson:"service,omitempty" json:"service,omitempty"`
	Source  string `bson:"source,omitempty" json:"source,omitempty"`
}

// Jobapplication is a careers-page application.
type Jobapplication struct {
	Name         string `bson:"name" json:"name" binding:"required"`
	Email        string `bson:"email" json:"email" binding:"required,email"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string `bson:"role" json:"role" binding:"required"`
	ResumeURL    string `bson:"resume_url,omitempty" json:"resume_url,omitempty" binding:"omitempty,url"`
	PortfolioURL string `bson:"portfolio_url,omitempty" json:"portfolio_url,omitempty" binding:"omitempty,url"`
	CoverLetter  string `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
}
