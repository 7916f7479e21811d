// Package rank re-orders engine hits with a profile-driven second scoring pass.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nkuhub/infosearch/internal/domain/profile"
	"github.com/nkuhub/infosearch/internal/domain/search/hit"
	"github.com/nkuhub/infosearch/internal/domain/search/sortby"
)

// engineScoreWeight controls how much of the engine's native relevance score
// survives into the composite score. Small, so it only breaks ties among
// equally boosted hits.
const engineScoreWeight = 0.019

// Boost factors, applied multiplicatively in a fixed sequence. Each factor
// multiplies the current accumulator, so the sequence is part of the contract.
const (
	teacherAcademicBoost = 1.3
	teacherAdminBoost    = 1.2
	studentBoost         = 1.2
	studentActivityBoost = 1.15

	collegeNameBoost    = 1.4
	collegeAliasBoost   = 1.3
	relatedCollegeBoost = 1.15

	keywordBoostBase = 1.1
	keywordBoostStep = 0.05
	keywordBoostCap  = 0.3

	primaryActivityBoost = 1.25
	relatedActivityBoost = 1.1
)

// Ranker recomputes per-hit composite scores and re-orders the hit list.
// It holds only immutable tables and is safe for concurrent use.
type Ranker struct {
	failures prometheus.Counter
	logger   *zap.Logger
}

// New creates a ranker. failures counts hits that fell back to their base
// score after a scoring error.
func New(failures prometheus.Counter, logger *zap.Logger) *Ranker {
	return &Ranker{failures: failures, logger: logger}
}

type rankedHit struct {
	hit       hit.Hit
	score     float64
	timestamp string
}

// Rank recomputes a composite score per hit from the profile's role and
// college affinity, then re-orders the list. A nil profile is an identity
// pass. A per-hit scoring failure keeps the hit with its unboosted engine
// score; it never aborts the batch.
func (r *Ranker) Rank(hits []hit.Hit, prof *profile.Profile, sort sortby.Sort) []hit.Hit {
	if prof == nil {
		return hits
	}

	related := relatedColleges(prof.College)

	ranked := make([]rankedHit, 0, len(hits))
	for _, h := range hits {
		rh, err := r.scoreHit(h, prof, related)
		if err != nil {
			r.failures.Inc()
			r.logger.Warn("personalization scoring failed, keeping base score",
				zap.String("url", h.URL), zap.Error(err))
			rh = rankedHit{hit: h, score: h.EngineScore}
		}
		ranked = append(ranked, rh)
	}

	sortRanked(ranked, sort)

	out := make([]hit.Hit, len(ranked))
	for i, rh := range ranked {
		out[i] = rh.hit
	}
	return out
}

// scoreHit computes the composite score for one hit. Panics in the heuristics
// are converted to errors so a single bad hit cannot take down the batch.
func (r *Ranker) scoreHit(h hit.Hit, prof *profile.Profile, related []string) (rh rankedHit, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("score hit: %v", p)
		}
	}()

	blob := h.Blob()
	boost := computeBoost(blob, prof, related)

	return rankedHit{
		hit:       h,
		score:     boost * (1 + engineScoreWeight*h.EngineScore),
		timestamp: h.Timestamp(),
	}, nil
}

// computeBoost accumulates the boost multiplier through the ordered heuristic
// checks. Later checks multiply the already-boosted value; reordering them
// changes scores.
func computeBoost(blob string, prof *profile.Profile, related []string) float64 {
	boost := 1.0

	// 1. Role-based content affinity. Both checks may fire for one hit.
	switch {
	case prof.Role == profile.RoleTeacher:
		if containsAny(blob, teacherAcademicTags) {
			boost *= teacherAcademicBoost
		}
		if containsAny(blob, teacherAdminTags) {
			boost *= teacherAdminBoost
		}
	case prof.Role.IsStudent():
		if containsAny(blob, studentTags) {
			boost *= studentBoost
		}
		if containsAny(blob, studentActivityTags) {
			boost *= studentActivityBoost
		}
	}

	// 2. College affinity.
	if !prof.HasCollege() {
		return boost
	}
	college := prof.College

	// Name-match tier: full name, then alias, then keyword density. First
	// match wins the tier.
	matched := false
	if contains(blob, college) {
		boost *= collegeNameBoost
		matched = true
	}
	if !matched {
		for _, alias := range collegeAliases[college] {
			if contains(blob, alias) {
				boost *= collegeAliasBoost
				matched = true
				break
			}
		}
	}
	if !matched {
		if n := countMatches(blob, contextKeywords(college)); n > 0 {
			extra := keywordBoostStep * float64(n)
			if extra > keywordBoostCap {
				extra = keywordBoostCap
			}
			boost *= keywordBoostBase + extra
		}
	}

	// Related-college check is independent of the name-match tier and stacks
	// with it.
	relatedMatched := false
	for _, rc := range related {
		if contains(blob, rc) {
			boost *= relatedCollegeBoost
			relatedMatched = true
			break
		}
	}

	// Activity amplifier: full strength for the home college, reduced for a
	// related one.
	if containsAny(blob, activityTags) {
		if matched {
			boost *= primaryActivityBoost
		} else if relatedMatched {
			boost *= relatedActivityBoost
		}
	}

	return boost
}

// relatedColleges returns the deduplicated union of the relation graph entry
// and the alternate names of the adjacent colleges, sorted for deterministic
// iteration.
func relatedColleges(college string) []string {
	if college == "" || college == profile.Unset {
		return nil
	}

	seen := make(map[string]struct{})
	for _, c := range collegeRelations[college] {
		seen[c] = struct{}{}
	}
	for _, c := range relatedVariants[college] {
		seen[c] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// contextKeywords returns the college-specific keywords extended with the
// generic campus keywords.
func contextKeywords(college string) []string {
	specific := collegeKeywords[college]
	out := make([]string, 0, len(specific)+len(baseKeywords))
	out = append(out, specific...)
	out = append(out, baseKeywords...)
	return out
}

// sortRanked orders the scored hits. Time ordering puts undated hits last
// (empty string is the lowest timestamp) and breaks ties by score. Both
// orderings are stable so pagination stays deterministic across identical
// requests.
func sortRanked(ranked []rankedHit, s sortby.Sort) {
	if s == sortby.Time {
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].timestamp != ranked[j].timestamp {
				return ranked[i].timestamp > ranked[j].timestamp
			}
			return ranked[i].score > ranked[j].score
		})
		return
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
}

// contains matches term against the lower-cased blob, lower-casing the term
// so Latin-script entries like "ACM" and "MBA" match.
func contains(blob, term string) bool {
	return strings.Contains(blob, strings.ToLower(term))
}

func containsAny(blob string, terms []string) bool {
	for _, t := range terms {
		if contains(blob, t) {
			return true
		}
	}
	return false
}

func countMatches(blob string, terms []string) int {
	n := 0
	for _, t := range terms {
		if contains(blob, t) {
			n++
		}
	}
	return n
}
