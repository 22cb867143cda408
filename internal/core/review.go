package core

// ReviewInput is the payload handed to the review generator.
type ReviewInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Diff  string `json:"diff"`
}

// Section names agreed with the generator. The order of SectionOrder is the
// order in which sections are rendered into the comment.
const (
	SectionSummary          = "summary"
	SectionImprovementPoint = "improvement_point"
	SectionSecurityPoint    = "security_point"
	SectionReviewPoint      = "review_point"
)

// SectionOrder lists every section in rendering order.
var SectionOrder = []string{
	SectionSummary,
	SectionImprovementPoint,
	SectionSecurityPoint,
	SectionReviewPoint,
}

// StructuredReview represents the full review output from the LLM in a parsable format.
type StructuredReview struct {
	Summary          string `json:"summary"`
	ImprovementPoint string `json:"improvement_point"`
	SecurityPoint    string `json:"security_point"`
	ReviewPoint      string `json:"review_point"`
}

// Section returns the text of the named section, or "" for an unknown name.
func (r *StructuredReview) Section(name string) string {
	switch name {
	case SectionSummary:
		return r.Summary
	case SectionImprovementPoint:
		return r.ImprovementPoint
	case SectionSecurityPoint:
		return r.SecurityPoint
	case SectionReviewPoint:
		return r.ReviewPoint
	default:
		return ""
	}
}
