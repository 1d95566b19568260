package routine

import (
	"math/rand/v2"
	"strings"

	"skincare-api/internal/model"
)

// wildcardSkinType matches every requested skin type.
const wildcardSkinType = "all"

// RNG is the source of randomness used to pick one product per step.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type globalRNG struct{}

func (globalRNG) Intn(n int) int { return rand.IntN(n) }

// NewRandomSource returns an RNG backed by the auto-seeded math/rand/v2
// generator. It is safe for concurrent use.
func NewRandomSource() RNG {
	return globalRNG{}
}

// Buckets groups filtered products by category.
type Buckets map[Category][]model.Product

// Planner builds routines from a catalogue snapshot.
type Planner struct {
	rng RNG
}

// NewPlanner creates a planner drawing picks from rng. A nil rng uses
// NewRandomSource.
func NewPlanner(rng RNG) *Planner {
	if rng == nil {
		rng = NewRandomSource()
	}
	return &Planner{rng: rng}
}

// Plan filters the snapshot for the skin type and concern, then assembles a
// morning and a night routine. It fails with model.ErrNoProducts for an empty
// snapshot and model.ErrNoMatchingProducts when nothing passes the filter.
func (p *Planner) Plan(snapshot []model.Product, skinType, concern string) (model.Routine, error) {
	if len(snapshot) == 0 {
		return model.Routine{}, model.ErrNoProducts
	}

	relevant := Filter(snapshot, skinType, concern)
	if len(relevant) == 0 {
		return model.Routine{}, model.ErrNoMatchingProducts
	}

	return Assemble(Bucket(relevant), p.rng), nil
}

// Matches reports whether product addresses concern and suits skinType,
// either directly or through the "all" skin type. Tags compare
// case-insensitively and must match exactly.
func Matches(product model.Product, skinType, concern string) bool {
	if !hasTag(product.Concerns, concern) {
		return false
	}
	return hasTag(product.SkinTypes, skinType) || hasTag(product.SkinTypes, wildcardSkinType)
}

// Filter returns the products that match skinType and concern, keeping
// snapshot order. The input is not modified.
func Filter(snapshot []model.Product, skinType, concern string) []model.Product {
	var out []model.Product
	for _, p := range snapshot {
		if Matches(p, skinType, concern) {
			out = append(out, p)
		}
	}
	return out
}

// Bucket groups products by category. Products with an unrecognised category
// are dropped.
func Bucket(products []model.Product) Buckets {
	b := make(Buckets)
	for _, p := range products {
		c, ok := ParseCategory(p.Category)
		if !ok {
			continue
		}
		b[c] = append(b[c], p)
	}
	return b
}

// Assemble picks one product per step from the buckets. Steps whose bucket
// is empty are skipped.
func Assemble(b Buckets, rng RNG) model.Routine {
	return model.Routine{
		Morning: sequence(b, MorningSteps, rng),
		Night:   sequence(b, NightSteps, rng),
	}
}

func sequence(b Buckets, steps []Category, rng RNG) []model.Product {
	out := make([]model.Product, 0, len(steps))
	for _, step := range steps {
		candidates := b[step]
		switch len(candidates) {
		case 0:
			continue
		case 1:
			out = append(out, candidates[0])
		default:
			out = append(out, candidates[rng.Intn(len(candidates))])
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return false
	}
	for _, t := range tags {
		if strings.EqualFold(strings.TrimSpace(t), want) {
			return true
		}
	}
	return false
}
