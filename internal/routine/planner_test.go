package routine

import (
	"math/rand/v2"
	"testing"

	"skincare-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRNG always returns val modulo n.
type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

// seededRNG is a reproducible RNG for property-style tests.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

func product(id, name, category string, skinTypes, concerns []string) model.Product {
	return model.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		SkinTypes: skinTypes,
		Concerns:  concerns,
	}
}

func names(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestPlanner_Plan_Scenarios(t *testing.T) {
	catalog := []model.Product{
		product("1", "Gentle Foam", "Cleanser", []string{"Oily", "All"}, []string{"Acne"}),
		product("2", "Niacinamide Serum", "Serum", []string{"All"}, []string{"Acne"}),
	}

	tests := []struct {
		name            string
		snapshot        []model.Product
		skinType        string
		concern         string
		expectedErr     error
		expectedMorning []string
		expectedNight   []string
	}{
		{
			name:            "Oily skin with acne",
			snapshot:        catalog,
			skinType:        "Oily",
			concern:         "Acne",
			expectedMorning: []string{"Gentle Foam", "Niacinamide Serum"},
			expectedNight:   []string{"Gentle Foam"},
		},
		{
			name:        "No product for dry skin hydration",
			snapshot:    catalog,
			skinType:    "Dry",
			concern:     "Hydration",
			expectedErr: model.ErrNoMatchingProducts,
		},
		{
			name:        "Empty catalogue",
			snapshot:    nil,
			skinType:    "Oily",
			concern:     "Acne",
			expectedErr: model.ErrNoProducts,
		},
		{
			name:            "Case-insensitive request",
			snapshot:        catalog,
			skinType:        "oILY",
			concern:         "acne",
			expectedMorning: []string{"Gentle Foam", "Niacinamide Serum"},
			expectedNight:   []string{"Gentle Foam"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := NewPlanner(fixedRNG{})

			routine, err := planner.Plan(tt.snapshot, tt.skinType, tt.concern)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMorning, names(routine.Morning))
			assert.Equal(t, tt.expectedNight, names(routine.Night))
		})
	}
}

func TestPlanner_Plan_FailureMessagesAreDistinct(t *testing.T) {
	planner := NewPlanner(fixedRNG{})

	_, errEmpty := planner.Plan(nil, "Oily", "Acne")
	_, errNoMatch := planner.Plan([]model.Product{
		product("1", "Foam", "Cleanser", []string{"Dry"}, []string{"Hydration"}),
	}, "Oily", "Acne")

	require.Error(t, errEmpty)
	require.Error(t, errNoMatch)
	assert.Equal(t, "No products found.", errEmpty.Error())
	assert.Equal(t, "No products found for this combination. Please try a different selection.", errNoMatch.Error())
	assert.NotErrorIs(t, errEmpty, model.ErrNoMatchingProducts)
}

func TestPlanner_Plan_SingleCandidatePerBucketIsDeterministic(t *testing.T) {
	cleanser := product("c", "Cleanser One", "cleanser", []string{"Dry"}, []string{"Hydration"})
	serum := product("s", "Serum One", "serum", []string{"all"}, []string{"hydration"})
	moisturizer := product("m", "Cream One", "Moisturizer", []string{"DRY"}, []string{"Hydration"})
	snapshot := []model.Product{moisturizer, serum, cleanser}

	planner := NewPlanner(newSeededRNG(7))
	for i := 0; i < 100; i++ {
		routine, err := planner.Plan(snapshot, "Dry", "Hydration")
		require.NoError(t, err)
		assert.Equal(t, []model.Product{cleanser, serum, moisturizer}, routine.Morning)
		assert.Equal(t, []model.Product{cleanser, moisturizer}, routine.Night)
	}
}

func TestPlanner_Plan_FullRoutineOrder(t *testing.T) {
	snapshot := []model.Product{
		product("1", "SPF", "Sunscreen", []string{"All"}, []string{"Dullness"}),
		product("2", "Retinol", "Night Treatment", []string{"All"}, []string{"Dullness"}),
		product("3", "Cream", "Moisturizer", []string{"All"}, []string{"Dullness"}),
		product("4", "Mist", "Toner", []string{"All"}, []string{"Dullness"}),
		product("5", "Vitamin C", "Serum", []string{"All"}, []string{"Dullness"}),
		product("6", "Gel", "Cleanser", []string{"All"}, []string{"Dullness"}),
	}

	routine, err := NewPlanner(fixedRNG{}).Plan(snapshot, "Normal", "Dullness")

	require.NoError(t, err)
	assert.Equal(t, []string{"Gel", "Vitamin C", "Cream", "SPF"}, names(routine.Morning))
	assert.Equal(t, []string{"Gel", "Mist", "Retinol", "Cream"}, names(routine.Night))
}

func TestPlanner_Plan_UnknownCategoryOnly(t *testing.T) {
	snapshot := []model.Product{
		product("1", "Face Mask", "Mask", []string{"All"}, []string{"Acne"}),
	}

	routine, err := NewPlanner(fixedRNG{}).Plan(snapshot, "Oily", "Acne")

	require.NoError(t, err)
	assert.Empty(t, routine.Morning)
	assert.Empty(t, routine.Night)
	assert.NotNil(t, routine.Morning)
	assert.NotNil(t, routine.Night)
}

func TestPlanner_Plan_ConcernMismatchNeverSelected(t *testing.T) {
	snapshot := []model.Product{
		product("a1", "Acne Foam", "Cleanser", []string{"Oily"}, []string{"Acne"}),
		product("a2", "Acne Gel", "Cleanser", []string{"All"}, []string{"Acne", "Pores"}),
		product("h1", "Hydra Foam", "Cleanser", []string{"Oily", "All"}, []string{"Hydration"}),
		product("h2", "Hydra Serum", "Serum", []string{"Oily"}, []string{"Hydration"}),
		product("a3", "BHA Serum", "Serum", []string{"Oily"}, []string{"acne"}),
		product("h3", "Hydra Cream", "Moisturizer", []string{"All"}, []string{"Hydration"}),
	}

	planner := NewPlanner(newSeededRNG(42))
	for i := 0; i < 200; i++ {
		routine, err := planner.Plan(snapshot, "Oily", "Acne")
		require.NoError(t, err)

		for _, p := range append(routine.Morning, routine.Night...) {
			assert.Contains(t, []string{"a1", "a2", "a3"}, p.ID)
		}
	}
}

func TestPlanner_Plan_PicksFromWholeBucket(t *testing.T) {
	snapshot := []model.Product{
		product("1", "Foam A", "Cleanser", []string{"All"}, []string{"Acne"}),
		product("2", "Foam B", "Cleanser", []string{"All"}, []string{"Acne"}),
		product("3", "Foam C", "Cleanser", []string{"All"}, []string{"Acne"}),
	}

	for i, expected := range []string{"Foam A", "Foam B", "Foam C"} {
		routine, err := NewPlanner(fixedRNG{val: i}).Plan(snapshot, "Dry", "Acne")
		require.NoError(t, err)
		require.Len(t, routine.Morning, 1)
		assert.Equal(t, expected, routine.Morning[0].Name)
	}

	seen := map[string]bool{}
	planner := NewPlanner(newSeededRNG(1))
	for i := 0; i < 300; i++ {
		routine, err := planner.Plan(snapshot, "Dry", "Acne")
		require.NoError(t, err)
		seen[routine.Morning[0].Name] = true
	}
	assert.Len(t, seen, 3)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		product  model.Product
		skinType string
		concern  string
		expected bool
	}{
		{
			name:     "Exact skin type and concern",
			product:  product("1", "p", "Serum", []string{"Dry"}, []string{"Hydration"}),
			skinType: "Dry",
			concern:  "Hydration",
			expected: true,
		},
		{
			name:     "Wildcard skin type",
			product:  product("1", "p", "Serum", []string{"ALL"}, []string{"Hydration"}),
			skinType: "Combination",
			concern:  "hydration",
			expected: true,
		},
		{
			name:     "Concern missing despite wildcard",
			product:  product("1", "p", "Serum", []string{"All"}, []string{"Acne"}),
			skinType: "Dry",
			concern:  "Hydration",
			expected: false,
		},
		{
			name:     "Skin type missing",
			product:  product("1", "p", "Serum", []string{"Oily"}, []string{"Hydration"}),
			skinType: "Dry",
			concern:  "Hydration",
			expected: false,
		},
		{
			name:     "No partial matching",
			product:  product("1", "p", "Serum", []string{"Dry"}, []string{"Hydration"}),
			skinType: "Dry",
			concern:  "Hydrat",
			expected: false,
		},
		{
			name:     "Empty skin types never match",
			product:  product("1", "p", "Serum", nil, []string{"Hydration"}),
			skinType: "Dry",
			concern:  "Hydration",
			expected: false,
		},
		{
			name:     "Empty concerns never match",
			product:  product("1", "p", "Serum", []string{"All"}, nil),
			skinType: "Dry",
			concern:  "Hydration",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.product, tt.skinType, tt.concern))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	snapshot := []model.Product{
		product("1", "A", "Cleanser", []string{"Oily"}, []string{"Acne"}),
		product("2", "B", "Serum", []string{"Dry"}, []string{"Acne"}),
		product("3", "C", "Toner", []string{"All"}, []string{"Acne"}),
		product("4", "D", "Serum", []string{"All"}, []string{"Pores"}),
	}

	first := Filter(snapshot, "Oily", "Acne")
	second := Filter(snapshot, "Oily", "Acne")
	again := Filter(first, "Oily", "Acne")

	assert.Equal(t, first, second)
	assert.Equal(t, first, again)
	assert.Equal(t, []string{"A", "C"}, names(first))
	assert.Len(t, snapshot, 4)
}

func TestBucket(t *testing.T) {
	snapshot := []model.Product{
		product("1", "A", "CLEANSER", nil, nil),
		product("2", "B", "night treatment", nil, nil),
		product("3", "C", "Treatment", nil, nil),
		product("4", "D", "Night-Treatment", nil, nil),
		product("5", "E", "Exfoliant", nil, nil),
		product("6", "F", "sunscreen", nil, nil),
	}

	b := Bucket(snapshot)

	assert.Equal(t, []string{"A"}, names(b[Cleanser]))
	assert.Equal(t, []string{"B", "C", "D"}, names(b[NightTreatment]))
	assert.Equal(t, []string{"F"}, names(b[Sunscreen]))
	assert.Empty(t, b[Toner])
	assert.Len(t, b, 3)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label    string
		expected Category
		ok       bool
	}{
		{"Cleanser", Cleanser, true},
		{" toner ", Toner, true},
		{"SERUM", Serum, true},
		{"Moisturizer", Moisturizer, true},
		{"Sunscreen", Sunscreen, true},
		{"night-treatment", NightTreatment, true},
		{"Moisturiser", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			c, ok := ParseCategory(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, c)
		})
	}
}
