package entity

import "time"

// FHIR ConceptMap equivalence codes used by the NAMASTE to ICD-11 maps.
type Equivalence string

const (
	EquivalenceRelatedTo  Equivalence = "relatedto"
	EquivalenceEquivalent Equivalence = "equivalent"
	EquivalenceEqual      Equivalence = "equal"
	EquivalenceWider      Equivalence = "wider"
	EquivalenceNarrower   Equivalence = "narrower"
	EquivalenceInexact    Equivalence = "inexact"
	EquivalenceUnmatched  Equivalence = "unmatched"
)

const (
	SystemNamaste = "http://namaste.gov.in/fhir/CodeSystem/namaste"
	SystemICD11   = "http://id.who.int/icd11/mms"
)

// CodeMapping links one NAMASTE code to one ICD-11 code. Reverse
// translation may yield several mappings for a single ICD-11 code.
type CodeMapping struct {
	NamasteCode    string      `json:"namaste_code"`
	NamasteDisplay string      `json:"namaste_display"`
	NamasteSystem  string      `json:"namaste_system"`
	ICD11Code      string      `json:"icd11_code"`
	ICD11Display   string      `json:"icd11_display"`
	Equivalence    Equivalence `json:"equivalence"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
