package matching

import (
	"math"
	"sort"

	"jobbridge/internal/domain/beneficiary"
	"jobbridge/internal/domain/job"
)

// Match pairs a beneficiary with an active job whose required skills overlap
// the beneficiary's skills. Matches are derived values and are never stored.
type Match struct {
	Beneficiary     beneficiary.Beneficiary
	Job             job.Job
	MatchingSkills  []string
	MatchPercentage int
}

// ComputeMatches ranks every compatible (beneficiary, job) pair.
//
// Jobs that are not active or that declare no required skills never produce a
// match. The percentage is the share of the job's required skills covered by
// the beneficiary, rounded half up. Results are ordered by percentage
// descending; equal percentages keep the beneficiary-major generation order.
// Neither input is modified.
func ComputeMatches(beneficiaries []beneficiary.Beneficiary, jobs []job.Job) []Match {
	eligible := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if !j.IsActive() {
			continue
		}
		if j.RequiredSkills.Len() == 0 {
			continue
		}
		eligible = append(eligible, j)
	}

	out := make([]Match, 0)
	for _, b := range beneficiaries {
		for _, j := range eligible {
			shared := b.Skills.Intersect(j.RequiredSkills)
			if len(shared) == 0 {
				continue
			}
			out = append(out, Match{
				Beneficiary:     b,
				Job:             j,
				MatchingSkills:  shared,
				MatchPercentage: Percentage(len(shared), j.RequiredSkills.Len()),
			})
		}
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].MatchPercentage > out[k].MatchPercentage
	})

	return out
}

// Percentage returns round(100*matched/required) with halves rounded up.
// Any overlap scores at least 1 and only full coverage scores 100, so a
// result below 0.5 or at 99.5 and above is pulled back into [1, 99].
// A non-positive count on either side yields 0.
func Percentage(matched, required int) int {
	if required <= 0 || matched <= 0 {
		return 0
	}
	if matched >= required {
		return 100
	}
	p := int(math.Round(100 * float64(matched) / float64(required)))
	return clampInt(p, 1, 99)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
