package pricing

// ServiceCategory determines which duration choices and add-ons a service
// may offer, and whether its pricing is forced to zero.
type ServiceCategory string

const (
	GeneralConsultation    ServiceCategory = "general_consultation"
	ChapterReview          ServiceCategory = "chapter_review"
	FullThesisCycleSupport ServiceCategory = "full_thesis_cycle_support"
	FullThesisReview       ServiceCategory = "full_thesis_review"
	FreeConsultation       ServiceCategory = "free_consultation"
)

// AcademicLevel is the key for tiered pricing.
type AcademicLevel string

const (
	Undergraduate AcademicLevel = "undergraduate"
	Masters       AcademicLevel = "masters"
	PhD           AcademicLevel = "phd"
	Postdoc       AcademicLevel = "postdoc"
)

// AllLevels lists every academic level in display order.
var AllLevels = []AcademicLevel{Undergraduate, Masters, PhD, Postdoc}

// ValidCategory reports whether c is one of the known service categories.
func ValidCategory(c ServiceCategory) bool {
	switch c {
	case GeneralConsultation, ChapterReview, FullThesisCycleSupport, FullThesisReview, FreeConsultation:
		return true
	}
	return false
}

// ValidLevel reports whether l is one of the known academic levels.
func ValidLevel(l AcademicLevel) bool {
	for _, level := range AllLevels {
		if level == l {
			return true
		}
	}
	return false
}

// IsFree reports whether the category forbids paid pricing and add-ons.
func (c ServiceCategory) IsFree() bool {
	return c == FreeConsultation
}
