package seed

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestSeedFile writes lines into a gzipped file and returns its path.
func createTestSeedFile(t *testing.T, filename string, lines []string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, line := range lines {
		_, err := gzipWriter.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}

	return filePath
}

func TestFileLoader_Load_Success(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createTestSeedFile(t, "products.jsonl.gz", []string{
		`{"name":"Gentle Foam","category":"cleanser","skin_types":["oily"],"concerns":["acne"]}`,
		`{"name":"Vitamin C","category":"serum","skin_types":["all"],"concerns":["dullness","acne"]}`,
	})

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Gentle Foam", products[0].Name)
	assert.Equal(t, "cleanser", products[0].Category)
	assert.Equal(t, []string{"oily"}, products[0].SkinTypes)
	assert.Equal(t, []string{"dullness", "acne"}, products[1].Concerns)
}

func TestFileLoader_Load_SkipsBlankAndMalformedLines(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createTestSeedFile(t, "mixed.jsonl.gz", []string{
		`{"name":"A","category":"toner","skin_types":["dry"],"concerns":["redness"]}`,
		"",
		"   ",
		`{"name": broken`,
		`["not", "an", "object"]`,
		`{"name":"B","product_type":"sunscreen","skin_types":["all"],"concerns":["aging"]}`,
	})

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "sunscreen", products[1].ProductType)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	products, err := loader.Load(context.Background(), "/nonexistent/path/to/file.gz")

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to open seed file")
}

func TestFileLoader_Load_InvalidGzip(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := filepath.Join(t.TempDir(), "invalid.gz")
	require.NoError(t, os.WriteFile(filePath, []byte("not a gzip file"), 0644))

	products, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to create gzip reader")
}

func TestFileLoader_Load_ContextCancellation(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createTestSeedFile(t, "products.jsonl.gz", []string{
		`{"name":"A","category":"toner","skin_types":["dry"],"concerns":["redness"]}`,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	products, err := loader.Load(ctx, filePath)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, products)
}

func TestFileLoader_Load_EmptyFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createTestSeedFile(t, "empty.jsonl.gz", []string{})

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Empty(t, products)
}

// TestFileLoader_SampleCatalog reads the file produced by
// go run scripts/generate_sample_catalog.go
func TestFileLoader_SampleCatalog(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	for _, path := range []string{"data/catalog/products.jsonl.gz", "../../data/catalog/products.jsonl.gz"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		products, err := loader.Load(context.Background(), path)
		require.NoError(t, err)
		assert.NotEmpty(t, products)
		for _, p := range products {
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Category)
		}
		return
	}

	t.Skip("sample catalogue not found. Run: go run scripts/generate_sample_catalog.go")
}
