package sheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/cert"
)

const yamlSheet = `
g:
  mean: 9.81
  standard_deviation: 0.02
l: 1.2 ± 5%
n: 3
k:
  mean: 4
  coefficient_of_variation: 0.5
`

const jsonSheet = `{
  "g": {"mean": 9.81, "standard_deviation": 0.02},
  "l": "1.2 ± 5%",
  "n": 3,
  "k": {"mean": 4, "coefficient_of_variation": 0.5}
}`

const tomlSheet = `
g = { mean = 9.81, standard_deviation = 0.02 }
l = "1.2 ± 5%"
n = 3
k = "4 +- 2"
`

func writeSheet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AllFormats(t *testing.T) {
	files := map[string]string{
		"sheet.yaml": yamlSheet,
		"sheet.yml":  yamlSheet,
		"sheet.json": jsonSheet,
		"sheet.toml": tomlSheet,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			s, err := Load(writeSheet(t, name, content))
			require.NoError(t, err)

			assert.Equal(t, []string{"g", "k", "l", "n"}, s.Names())

			g, ok := s.Lookup("g")
			require.True(t, ok)
			assert.IsType(t, cert.AbsUncertainty[float64]{}, g)
			assert.InDelta(t, 9.81, g.Mean(), 1e-12)
			assert.InDelta(t, 0.02, g.StandardDeviation(), 1e-12)

			l, _ := s.Lookup("l")
			assert.IsType(t, cert.RelUncertainty[float64]{}, l)
			assert.InDelta(t, 0.05, l.CoefficientOfVariation(), 1e-12)

			n, _ := s.Lookup("n")
			assert.Equal(t, cert.Exact(3), n)

			k, _ := s.Lookup("k")
			assert.InDelta(t, 2, k.StandardDeviation(), 1e-12)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeSheet(t, "sheet.ini", "g = 1"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open sheet")

	_, err = Load(writeSheet(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode json sheet")
}

func TestDecode_InvalidEntries(t *testing.T) {
	tests := map[string]string{
		"list":     "x: [1, 2]\n",
		"no mean":  "x:\n  standard_deviation: 1\n",
		"no error": "x:\n  mean: 1\n",
		"bool":     "x: true\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(content), "yaml")
			assert.ErrorIs(t, err, ErrInvalidEntry)
			assert.Contains(t, err.Error(), `"x"`)
		})
	}

	_, err := Decode(strings.NewReader(`x = "ten ± 1"`), "toml")
	assert.ErrorIs(t, err, cert.ErrSyntax)

	_, err = Decode(strings.NewReader("{}"), "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
