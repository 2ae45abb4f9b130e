package pipeline

import (
	"regexp"
	"strings"

	"spomap-api/internal/models"
)

// centerNamePattern splits "BASE(CITY_HINT)" center names, e.g. "동구(인천)".
var centerNamePattern = regexp.MustCompile(`^(.+)\((.+)\)`)

// regionSuffixes are tried in order when appending an administrative suffix to a base name.
var regionSuffixes = []string{"시", "군", "구"}

// regionMatcher selects candidate regions for a base name. An empty result
// passes control to the next matcher.
type regionMatcher func(candidates []models.RegionPopulation, base string) []models.RegionPopulation

var regionMatchers = []regionMatcher{
	matchShortNameInBase,
	matchSuffixedShortName,
	matchFullNameContainsBase,
}

// RegionResolver maps fitness-measurement center names to region codes.
type RegionResolver struct {
	regions []models.RegionPopulation
}

// NewRegionResolver creates a resolver over the population reference table.
func NewRegionResolver(regions []models.RegionPopulation) *RegionResolver {
	return &RegionResolver{regions: regions}
}

// Resolve returns the region code for a center name. When several regions
// match at the same step, the first one in table order wins.
func (r *RegionResolver) Resolve(centerName string) (string, bool) {
	base, hint := splitCenterName(centerName)
	if base == "" {
		return "", false
	}

	candidates := r.regions
	if hint != "" {
		// an uninformative hint falls back to the full table
		if hinted := filterRegions(r.regions, func(reg models.RegionPopulation) bool {
			return strings.Contains(reg.FullName, hint)
		}); len(hinted) > 0 {
			candidates = hinted
		}
	}

	for _, match := range regionMatchers {
		if matched := match(candidates, base); len(matched) > 0 {
			return matched[0].ID, true
		}
	}
	return "", false
}

func splitCenterName(name string) (base, hint string) {
	name = strings.TrimSpace(name)
	if m := centerNamePattern.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return name, ""
}

func matchShortNameInBase(candidates []models.RegionPopulation, base string) []models.RegionPopulation {
	return filterRegions(candidates, func(reg models.RegionPopulation) bool {
		return reg.ShortName != "" && strings.Contains(base, reg.ShortName)
	})
}

func matchSuffixedShortName(candidates []models.RegionPopulation, base string) []models.RegionPopulation {
	for _, suffix := range regionSuffixes {
		target := base + suffix
		if matched := filterRegions(candidates, func(reg models.RegionPopulation) bool {
			return reg.ShortName == target
		}); len(matched) > 0 {
			return matched
		}
	}
	return nil
}

func matchFullNameContainsBase(candidates []models.RegionPopulation, base string) []models.RegionPopulation {
	return filterRegions(candidates, func(reg models.RegionPopulation) bool {
		return strings.Contains(reg.FullName, base)
	})
}

func filterRegions(regions []models.RegionPopulation, keep func(models.RegionPopulation) bool) []models.RegionPopulation {
	var out []models.RegionPopulation
	for _, reg := range regions {
		if keep(reg) {
			out = append(out, reg)
		}
	}
	return out
}
