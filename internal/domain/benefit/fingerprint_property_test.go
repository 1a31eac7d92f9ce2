//go:build unit

package benefit_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"loyalty-engine/internal/domain/benefit"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var weekdayNames = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

func freeProductDefinition(days []string, productIDs []int64) benefit.Definition {
	return benefit.Definition{
		Type:           "FREE_PRODUCT",
		PointsRequired: 10,
		ApplicableDays: days,
		ProductIDs:     productIDs,
	}
}

func daysOfMask(mask int) []string {
	var out []string
	for i, name := range weekdayNames {
		if mask&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}

func shuffled[T any](rng *rand.Rand, in []T) []T {
	out := slices.Clone(in)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func TestFingerprintProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("order, case and repetition of days and products do not change the fingerprint", prop.ForAll(
		func(firstDay int, days []int, firstProduct int64, products []int64, seed int64) bool {
			dayNames := []string{weekdayNames[firstDay]}
			for _, d := range days {
				dayNames = append(dayNames, weekdayNames[d])
			}
			ids := append([]int64{firstProduct}, products...)

			want, err := benefit.Normalize(freeProductDefinition(dayNames, ids))
			if err != nil {
				return false
			}

			rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test shuffling only
			variantDays := shuffled(rng, append(slices.Clone(dayNames), dayNames...))
			for i := range variantDays {
				if i%2 == 0 {
					variantDays[i] = strings.ToLower(variantDays[i])
				}
			}
			variantIDs := shuffled(rng, append(slices.Clone(ids), ids...))

			got, err := benefit.Normalize(freeProductDefinition(variantDays, variantIDs))
			if err != nil {
				return false
			}
			return got.Fingerprint() == want.Fingerprint()
		},
		gen.IntRange(0, 6),
		gen.SliceOf(gen.IntRange(0, 6)),
		gen.Int64Range(1, 1000),
		gen.SliceOf(gen.Int64Range(1, 1000)),
		gen.Int64(),
	))

	properties.Property("EVERYDAY matches all seven days in any order", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- test shuffling only
			explicit, err := benefit.Normalize(freeProductDefinition(shuffled(rng, weekdayNames), []int64{1}))
			if err != nil {
				return false
			}
			everyDay, err := benefit.Normalize(freeProductDefinition([]string{benefit.EveryDay}, []int64{1}))
			if err != nil {
				return false
			}
			return explicit.Fingerprint() == everyDay.Fingerprint()
		},
		gen.Int64(),
	))

	properties.Property("different day sets never share a fingerprint", prop.ForAll(
		func(a, b int) bool {
			left, err := benefit.Normalize(freeProductDefinition(daysOfMask(a), []int64{1}))
			if err != nil {
				return false
			}
			right, err := benefit.Normalize(freeProductDefinition(daysOfMask(b), []int64{1}))
			if err != nil {
				return false
			}
			return (a == b) == (left.Fingerprint() == right.Fingerprint())
		},
		gen.IntRange(1, 127),
		gen.IntRange(1, 127),
	))

	properties.TestingRun(t)
}
