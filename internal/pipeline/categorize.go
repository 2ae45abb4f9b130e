package pipeline

import (
	"strings"

	"spomap-api/internal/models"
)

// sportKeywords maps each sport code to the substrings that label a text with it.
var sportKeywords = map[string][]string{
	models.SportFitness:     {"헬스", "피트니스", "PT", "짐", "웨이트", "보디빌딩"},
	models.SportPilatesYoga: {"필라테스", "요가"},
	models.SportSwimming:    {"수영"},
	models.SportBallSports:  {"축구", "풋살", "농구", "배드민턴", "족구", "야구", "테니스", "탁구", "핸드볼", "배구"},
}

// publicFacilityHints are extra tokens that only apply to public facility records.
var publicFacilityHints = []struct {
	sport  string
	tokens []string
}{
	{models.SportBallSports, []string{"간이운동장", "운동장", "구장"}},
	{models.SportFitness, []string{"체육관", "체육센터", "헬스장"}},
	{models.SportSwimming, []string{"수영장"}},
	{models.SportPilatesYoga, []string{"요가", "필라테스"}},
}

// Categorize returns the sport codes whose keywords occur in text, in catalogue order.
// Matching is plain substring containment.
func Categorize(text string) []string {
	found := make(map[string]bool)
	matchKeywords(text, found)
	return inCatalogueOrder(found)
}

// CategorizePublic labels a public facility from its type, industry and name.
func CategorizePublic(facilityType, industry, name string) []string {
	joined := strings.Join([]string{facilityType, industry, name}, " ")

	found := make(map[string]bool)
	matchKeywords(joined, found)
	for _, hint := range publicFacilityHints {
		if containsAny(joined, hint.tokens) {
			found[hint.sport] = true
		}
	}
	return inCatalogueOrder(found)
}

// LabelFacilities returns a copy of facilities with Categories filled in.
func LabelFacilities(facilities []models.Facility) []models.Facility {
	labeled := make([]models.Facility, len(facilities))
	for i, f := range facilities {
		switch f.Kind {
		case models.PublicFacility:
			f.Categories = CategorizePublic(f.FacilityType, f.Industry, f.Name)
		default:
			f.Categories = Categorize(f.ItemName)
		}
		labeled[i] = f
	}
	return labeled
}

func matchKeywords(text string, found map[string]bool) {
	if text == "" {
		return
	}
	for sport, keywords := range sportKeywords {
		if containsAny(text, keywords) {
			found[sport] = true
		}
	}
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}

func inCatalogueOrder(found map[string]bool) []string {
	if len(found) == 0 {
		return nil
	}
	codes := make([]string, 0, len(found))
	for _, sport := range models.SportCatalogue() {
		if found[sport.Code] {
			codes = append(codes, sport.Code)
		}
	}
	return codes
}
