package extract

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// departmentKeywords is the department/specialty lexicon, scanned in this
// fixed order: when several keywords appear in a text, the one listed
// earliest here wins, regardless of position in the text.
var departmentKeywords = []string{
	"cardiology", "cardiologist",
	"neurology", "neurologist",
	"dentist", "dental", "dentistry",
	"dermatology", "dermatologist",
	"general",
	"orthopedics", "orthopedist", "ortho",

	// General / primary care
	"gp", "general practitioner", "physician", "family doctor", "general practice", "general medicine", "family medicine",

	// Eye care
	"ophthalmologist", "ophthalmology", "optometrist", "optometry", "eye doctor", "eye specialist",

	// ENT
	"ent", "ent specialist", "otolaryngologist", "otolaryngology",

	// Women's health
	"gynecologist", "gynecology", "gynae", "gynac", "obgyn", "obstetrics and gynecology",

	// Children
	"pediatrician", "pediatrics", "child doctor", "paediatrician",

	// Mental health
	"psychiatrist", "psychiatry", "psychologist", "psychology", "therapist", "mental health", "counselor",

	// Internal organs
	"gastroenterologist", "gastroenterology", "gastrologist", "stomach doctor",
	"nephrologist", "nephrology",
	"urologist", "urology",
	"hepatologist", "hepatology",
	"pulmonologist", "pulmonology", "chest specialist",

	// Bones & muscles
	"bone doctor", "physiotherapist", "physiotherapy", "physio", "chiropractor", "chiropractic",
	"rheumatologist", "rheumatology",

	// Specialized
	"oncologist", "oncology", "cancer specialist",
	"endocrinologist", "endocrinology", "diabetologist",
	"surgeon", "general surgery",
}

// departmentNames maps lexicon keywords to canonical department names.
// Multi-word names carry their capitalization here; keywords absent from
// this table fall back to first-letter capitalization of the keyword itself.
var departmentNames = map[string]string{
	"cardiologist": "Cardiology",
	"cardiology":   "Cardiology",

	"neurologist": "Neurology",
	"neurology":   "Neurology",

	"dermatologist": "Dermatology",
	"dermatology":   "Dermatology",

	"orthopedist": "Orthopedics",
	"orthopedics": "Orthopedics",
	"ortho":       "Orthopedics",
	"bone doctor": "Orthopedics",

	"dentist":   "Dentistry",
	"dental":    "Dentistry",
	"dentistry": "Dentistry",

	"general":              "General Practice",
	"gp":                   "General Practice",
	"general practitioner": "General Practice",
	"general practice":     "General Practice",
	"physician":            "General Medicine",
	"general medicine":     "General Medicine",
	"family doctor":        "Family Medicine",
	"family medicine":      "Family Medicine",

	"ophthalmologist": "Ophthalmology",
	"ophthalmology":   "Ophthalmology",
	"optometrist":     "Optometry",
	"optometry":       "Optometry",
	"eye doctor":      "Ophthalmology",
	"eye specialist":  "Ophthalmology",

	"ent":              "Otolaryngology",
	"ent specialist":   "Otolaryngology",
	"otolaryngologist": "Otolaryngology",
	"otolaryngology":   "Otolaryngology",

	"gynecologist":               "Gynecology",
	"gynecology":                 "Gynecology",
	"gynae":                      "Gynecology",
	"gynac":                      "Gynecology",
	"obgyn":                      "Obstetrics and Gynecology",
	"obstetrics and gynecology":  "Obstetrics and Gynecology",

	"pediatrician":  "Pediatrics",
	"pediatrics":    "Pediatrics",
	"child doctor":  "Pediatrics",
	"paediatrician": "Pediatrics",

	"psychiatrist":  "Psychiatry",
	"psychiatry":    "Psychiatry",
	"psychologist":  "Psychology",
	"psychology":    "Psychology",
	"therapist":     "Mental Health",
	"mental health": "Mental Health",
	"counselor":     "Mental Health",

	"gastroenterologist": "Gastroenterology",
	"gastroenterology":   "Gastroenterology",
	"gastrologist":       "Gastroenterology",
	"stomach doctor":     "Gastroenterology",

	"nephrologist": "Nephrology",
	"nephrology":   "Nephrology",

	"urologist": "Urology",
	"urology":   "Urology",

	"hepatologist": "Hepatology",
	"hepatology":   "Hepatology",

	"pulmonologist":    "Pulmonology",
	"pulmonology":      "Pulmonology",
	"chest specialist": "Pulmonology",

	"physiotherapist": "Physiotherapy",
	"physiotherapy":   "Physiotherapy",
	"physio":          "Physiotherapy",

	"chiropractor": "Chiropractic",
	"chiropractic": "Chiropractic",

	"rheumatologist": "Rheumatology",
	"rheumatology":   "Rheumatology",

	"oncologist":        "Oncology",
	"oncology":          "Oncology",
	"cancer specialist": "Oncology",

	"endocrinologist": "Endocrinology",
	"endocrinology":   "Endocrinology",
	"diabetologist":   "Endocrinology",

	"surgeon":         "General Surgery",
	"general surgery": "General Surgery",
}

// lexicon matches department keywords in a single pass and resolves ties by
// lexicon order. Built once at process start; read-only afterwards.
type lexicon struct {
	keywords []string
	matcher  *ahocorasick.Matcher
}

func newLexicon(keywords []string) *lexicon {
	return &lexicon{
		keywords: keywords,
		matcher:  ahocorasick.NewStringMatcher(keywords),
	}
}

var defaultLexicon = newLexicon(departmentKeywords)

// find returns the winning keyword for the lower-cased text, or "" when no
// keyword is a substring of it. The winner is the matched keyword with the
// lowest lexicon index.
func (l *lexicon) find(lowerText string) string {
	hits := l.matcher.Match([]byte(lowerText))
	if len(hits) == 0 {
		return ""
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h < best {
			best = h
		}
	}
	return l.keywords[best]
}

// canonicalName maps a matched keyword to its canonical department name.
// Keywords missing from the table are capitalized as-is; the two paths are
// deliberately distinct so table entries keep their multi-word casing.
func canonicalName(keyword string) string {
	if name, ok := departmentNames[strings.ToLower(keyword)]; ok {
		return name
	}
	return capitalize(keyword)
}

// capitalize upper-cases the first character only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
