// File: internal/services/taxonomy/data.go
package taxonomy

import "github.com/visionary-ai/medassist/internal/domain"

// DefaultRecords is the bundled specialty classification reference data,
// modeled on the NUCC provider taxonomy (Group -> Classification ->
// Specialization). Loaded once at process start.
func DefaultRecords() []domain.TaxonomyRecord {
	return []domain.TaxonomyRecord{
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Dermatology", Specialization: "", DisplayName: "Dermatologist", Code: "207N00000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Dermatology", Specialization: "Dermatopathology", DisplayName: "Dermatopathologist", Code: "207ND0900X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Dermatology", Specialization: "Pediatric Dermatology", DisplayName: "Pediatric Dermatologist", Code: "207NP0225X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Dermatology", Specialization: "Procedural Dermatology", DisplayName: "Procedural Dermatologist", Code: "207ND0101X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Family Medicine", Specialization: "", DisplayName: "Family Medicine Physician", Code: "207Q00000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Internal Medicine", Specialization: "", DisplayName: "Internist", Code: "207R00000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Internal Medicine", Specialization: "Cardiovascular Disease", DisplayName: "Cardiologist", Code: "207RC0000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Internal Medicine", Specialization: "Endocrinology, Diabetes & Metabolism", DisplayName: "Endocrinologist", Code: "207RE0101X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Internal Medicine", Specialization: "Gastroenterology", DisplayName: "Gastroenterologist", Code: "207RG0100X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Internal Medicine", Specialization: "Infectious Disease", DisplayName: "Infectious Disease Physician", Code: "207RI0200X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Internal Medicine", Specialization: "Rheumatology", DisplayName: "Rheumatologist", Code: "207RR0500X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Ophthalmology", Specialization: "", DisplayName: "Ophthalmologist", Code: "207W00000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Orthopaedic Surgery", Specialization: "", DisplayName: "Orthopaedic Surgeon", Code: "207X00000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Otolaryngology", Specialization: "", DisplayName: "Otolaryngologist", Code: "207Y00000X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Psychiatry & Neurology", Specialization: "Neurology", DisplayName: "Neurologist", Code: "2084N0400X"},
		{Group: "Allopathic & Osteopathic Physicians", Classification: "Psychiatry & Neurology", Specialization: "Psychiatry", DisplayName: "Psychiatrist", Code: "2084P0800X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "General Practice", DisplayName: "General Dentist", Code: "1223G0001X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "Endodontics", DisplayName: "Endodontist", Code: "1223E0200X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "Oral and Maxillofacial Surgery", DisplayName: "Oral Surgeon", Code: "1223S0112X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "Orthodontics and Dentofacial Orthopedics", DisplayName: "Orthodontist", Code: "1223X0400X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "Pediatric Dentistry", DisplayName: "Pediatric Dentist", Code: "1223P0221X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "Periodontics", DisplayName: "Periodontist", Code: "1223P0300X"},
		{Group: "Dental Providers", Classification: "Dentist", Specialization: "Prosthodontics", DisplayName: "Prosthodontist", Code: "1223P0700X"},
	}
}
