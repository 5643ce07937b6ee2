package entities

// ValidityType selects which academic years an assignment counts toward.
type ValidityType string

const (
	ValidityIndefinite    ValidityType = "indefinite"
	ValidityCurrentTerm   ValidityType = "current_term"
	ValidityCurrentYear   ValidityType = "current_year"
	ValiditySpecificYear  ValidityType = "specific_year"
	ValidityYearRange     ValidityType = "year_range"
	ValiditySpecificTerms ValidityType = "specific_terms"
)

func (t ValidityType) Valid() bool {
	switch t {
	case ValidityIndefinite, ValidityCurrentTerm, ValidityCurrentYear,
		ValiditySpecificYear, ValidityYearRange, ValiditySpecificTerms:
		return true
	}
	return false
}

// Validity is the declarative validity descriptor. Only the fields matching
// Type are meaningful.
type Validity struct {
	Type        ValidityType `json:"type"`
	YearID      string       `json:"year_id,omitempty"`
	StartYearID string       `json:"start_year_id,omitempty"`
	EndYearID   string       `json:"end_year_id,omitempty"`
	TermIDs     []string     `json:"term_ids,omitempty"`
}

type TermApplicabilityType string

const (
	TermsAll      TermApplicabilityType = "all_terms"
	TermsSpecific TermApplicabilityType = "specific_terms"
)

func (t TermApplicabilityType) Valid() bool {
	return t == TermsAll || t == TermsSpecific
}

// TermApplicability narrows which terms within a valid year count.
type TermApplicability struct {
	Type    TermApplicabilityType `json:"type"`
	TermIDs []string              `json:"term_ids,omitempty"`
}

// Period identifies an academic year and a term within it.
type Period struct {
	AcademicYearID string `json:"academic_year_id"`
	TermID         string `json:"term_id"`
}

func (p Period) IsZero() bool {
	return p.AcademicYearID == "" && p.TermID == ""
}
