package recipe

import (
	"fmt"
	"testing"

	"github.com/dapur-nusantara/resep/pkg/defaults"
	"github.com/dapur-nusantara/resep/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdd(t *testing.T, s *Store, title string, minutes int) int {
	t.Helper()
	idx, err := s.Add(title, "bahan", "langkah", fmt.Sprint(minutes))
	require.NoError(t, err)
	return idx
}

func titles(s *Store) []string {
	out := make([]string, 0, s.Len())
	for _, r := range s.All() {
		out = append(out, r.Title)
	}
	return out
}

func TestNewStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, defaults.MaxRecipes, s.Cap())

	assert.Equal(t, 3, NewStore(WithCapacity(3)).Cap())
	assert.Equal(t, defaults.MaxRecipes, NewStore(WithCapacity(0)).Cap())
}

func TestStore_Add(t *testing.T) {
	s := NewStore()
	idx, err := s.Add("  Soto Ayam ", "ayam\n\n  garam", "1. rebus\n2. sajikan", " 30 ")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	got, err := s.Get(idx)
	require.NoError(t, err)
	assert.Equal(t, Recipe{
		Title:       "Soto Ayam",
		Ingredients: "1. ayam\n2. garam",
		Steps:       "1. rebus\n2. sajikan",
		Duration:    30,
	}, got)
}

func TestStore_AddValidation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		ingredients string
		steps       string
		duration    string
		code        errors.ErrorCode
		field       string
	}{
		{"blank title", "  ", "a", "b", "1", errors.ErrCodeEmptyField, "title"},
		{"blank ingredients", "t", "\n", "b", "1", errors.ErrCodeEmptyField, "ingredients"},
		{"blank steps", "t", "a", "", "1", errors.ErrCodeEmptyField, "steps"},
		{"title checked first", "", "", "", "x", errors.ErrCodeEmptyField, "title"},
		{"non numeric duration", "t", "a", "b", "abc", errors.ErrCodeInvalidDuration, ""},
		{"negative duration", "t", "a", "b", "-5", errors.ErrCodeInvalidDuration, ""},
		{"fractional duration", "t", "a", "b", "2.5", errors.ErrCodeInvalidDuration, ""},
		{"empty duration", "t", "a", "b", "", errors.ErrCodeInvalidDuration, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			_, err := s.Add(tt.title, tt.ingredients, tt.steps, tt.duration)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			if tt.field != "" {
				field, ok := errors.ContextValue(err, "field")
				assert.True(t, ok)
				assert.Equal(t, tt.field, field)
			}
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestStore_AddDuplicateTitle(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "Tiwul Ketan", 10)

	for _, title := range []string{"$Tiwul Ketan!", "tiwulketan", "TIWUL  KETAN"} {
		_, err := s.Add(title, "a", "b", "5")
		assert.True(t, errors.HasCode(err, errors.ErrCodeDuplicateTitle), title)
	}
	assert.Equal(t, 1, s.Len())
}

func TestStore_AddCapacity(t *testing.T) {
	s := NewStore()
	for i := 0; i < defaults.MaxRecipes; i++ {
		mustAdd(t, s, fmt.Sprintf("Resep %d", i), i)
	}

	_, err := s.Add("Satu Lagi", "a", "b", "1")
	assert.Equal(t, errors.ErrCodeCapacityExceeded, errors.CodeOf(err))
	assert.Equal(t, defaults.MaxRecipes, s.Len())

	// capacity is checked before uniqueness
	_, err = s.Add("Resep 0", "a", "b", "1")
	assert.Equal(t, errors.ErrCodeCapacityExceeded, errors.CodeOf(err))
}

func TestStore_Update(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "Rendang", 120)
	mustAdd(t, s, "Gulai", 60)

	t.Run("keeps own title", func(t *testing.T) {
		require.NoError(t, s.Update(0, "rendang", "daging", "masak", "180"))
		got, _ := s.Get(0)
		assert.Equal(t, "rendang", got.Title)
		assert.Equal(t, "1. daging", got.Ingredients)
		assert.Equal(t, 180, got.Duration)
	})

	t.Run("collides with other", func(t *testing.T) {
		err := s.Update(0, "GULAI", "a", "b", "1")
		assert.Equal(t, errors.ErrCodeDuplicateTitle, errors.CodeOf(err))
		got, _ := s.Get(0)
		assert.Equal(t, "rendang", got.Title)
	})

	t.Run("index checked first", func(t *testing.T) {
		err := s.Update(5, "", "", "", "x")
		assert.Equal(t, errors.ErrCodeIndexOutOfRange, errors.CodeOf(err))
		err = s.Update(-1, "x", "a", "b", "1")
		assert.Equal(t, errors.ErrCodeIndexOutOfRange, errors.CodeOf(err))
	})

	t.Run("validation", func(t *testing.T) {
		err := s.Update(1, "Gulai", "a", "b", "lama")
		assert.Equal(t, errors.ErrCodeInvalidDuration, errors.CodeOf(err))
	})
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	_, err := s.Get(0)
	assert.Equal(t, errors.ErrCodeIndexOutOfRange, errors.CodeOf(err))

	mustAdd(t, s, "Pecel", 15)
	r, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Pecel", r.Title)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "Pecel", 15)

	all := s.All()
	all[0].Title = "changed"
	got, _ := s.Get(0)
	assert.Equal(t, "Pecel", got.Title)
}

func TestStore_RemoveMany(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		removed int
		want    []string
		code    errors.ErrorCode
	}{
		{"single", []int{1}, 1, []string{"A", "C", "D", "E"}, ""},
		{"several unordered", []int{4, 0, 2}, 3, []string{"B", "D"}, ""},
		{"duplicates collapse", []int{3, 3, 3}, 1, []string{"A", "B", "C", "E"}, ""},
		{"all", []int{0, 1, 2, 3, 4}, 5, []string{}, ""},
		{"none", nil, 0, []string{"A", "B", "C", "D", "E"}, ""},
		{"out of range", []int{0, 5}, 0, []string{"A", "B", "C", "D", "E"}, errors.ErrCodeIndexOutOfRange},
		{"negative", []int{-1}, 0, []string{"A", "B", "C", "D", "E"}, errors.ErrCodeIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for i, title := range []string{"A", "B", "C", "D", "E"} {
				mustAdd(t, s, title, i)
			}

			removed, err := s.RemoveMany(tt.indices)
			if tt.code != "" {
				assert.Equal(t, tt.code, errors.CodeOf(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.removed, removed)
			assert.Equal(t, tt.want, titles(s))
		})
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, "A", 1)
	mustAdd(t, s, "B", 2)

	assert.Equal(t, 2, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Clear())

	// cleared titles can be reused
	mustAdd(t, s, "A", 1)
}

func TestStore_BulkAdd(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		s := NewStore()
		mustAdd(t, s, "Awal", 1)

		err := s.BulkAdd([]Row{
			{Title: "Soto", Ingredients: "Ayam", Steps: "Rebus", Duration: 30},
			{Title: " Bakso ", Ingredients: "1. daging\n2. tepung", Steps: "bentuk\nrebus", Duration: 45},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Awal", "Soto", "Bakso"}, titles(s))

		got, _ := s.Get(2)
		assert.Equal(t, "1. bentuk\n2. rebus", got.Steps)
	})

	tests := []struct {
		name string
		rows []Row
		code errors.ErrorCode
	}{
		{
			name: "collides with stored",
			rows: []Row{{Title: "Baru", Ingredients: "a", Steps: "b"}, {Title: "awal!", Ingredients: "a", Steps: "b"}},
			code: errors.ErrCodeDuplicateTitle,
		},
		{
			name: "collides within batch",
			rows: []Row{{Title: "Nasi Goreng", Ingredients: "a", Steps: "b"}, {Title: "nasigoreng", Ingredients: "a", Steps: "b"}},
			code: errors.ErrCodeDuplicateTitle,
		},
		{
			name: "empty field",
			rows: []Row{{Title: "Baru", Ingredients: "a", Steps: "b"}, {Title: "Lagi", Ingredients: " ", Steps: "b"}},
			code: errors.ErrCodeEmptyField,
		},
		{
			name: "negative duration",
			rows: []Row{{Title: "Baru", Ingredients: "a", Steps: "b", Duration: -1}},
			code: errors.ErrCodeInvalidDuration,
		},
		{
			name: "over capacity",
			rows: []Row{{Title: "X", Ingredients: "a", Steps: "b"}, {Title: "Y", Ingredients: "a", Steps: "b"}, {Title: "Z", Ingredients: "a", Steps: "b"}},
			code: errors.ErrCodeCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(WithCapacity(3))
			mustAdd(t, s, "Awal", 1)

			err := s.BulkAdd(tt.rows)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			assert.Equal(t, []string{"Awal"}, titles(s))
		})
	}

	t.Run("duplicate carries title", func(t *testing.T) {
		s := NewStore()
		err := s.BulkAdd([]Row{
			{Title: "Soto", Ingredients: "a", Steps: "b"},
			{Title: "SOTO", Ingredients: "a", Steps: "b"},
		})
		title, ok := errors.ContextValue(err, "title")
		assert.True(t, ok)
		assert.Equal(t, "SOTO", title)
	})

	t.Run("bad row carries row number", func(t *testing.T) {
		s := NewStore()
		err := s.BulkAdd([]Row{
			{Title: "Soto", Ingredients: "a", Steps: "b"},
			{Title: "Rawon", Ingredients: "a", Steps: ""},
		})
		row, ok := errors.ContextValue(err, "row")
		assert.True(t, ok)
		assert.Equal(t, 2, row)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{" 45 ", 45, false},
		{"007", 7, false},
		{"", 0, true},
		{"+5", 0, true},
		{"-5", 0, true},
		{"1e3", 0, true},
		{"١٢", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Equal(t, errors.ErrCodeInvalidDuration, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
