package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testTable struct {
	rows [][]string
}

func (t testTable) Columns() []string { return []string{"NO", "JUDUL"} }
func (t testTable) Rows() [][]string  { return t.rows }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{{Name: "soto", Value: 30}, {Name: "rawon", Value: 60}}
	require.NoError(t, writer.Serialize(context.Background(), data))

	var result []testConfig
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: "soto", Value: 30}}
	require.NoError(t, writer.Serialize(context.Background(), data))

	var result []testConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, data, result)
}

func TestWriter_SerializeTable_Tabular(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testTable{rows: [][]string{{"1", "Soto Ayam"}, {"2", "Es Teler\nspesial"}}}
	require.NoError(t, writer.Serialize(context.Background(), data))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "NO  JUDUL", lines[0])
	assert.Equal(t, "--  -----", lines[1])
	assert.Equal(t, "1   Soto Ayam", lines[2])
	assert.Equal(t, "2   Es Teler …", lines[3])
}

func TestWriter_SerializeTable_EmptyTabular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), testTable{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_SerializeTable_Flat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Name   string
		Nested struct{ Minutes int }
		Tags   []string
		Meta   map[string]string
		Ptr    *int
	}{
		Name: "soto",
		Tags: []string{"kuah"},
		Meta: map[string]string{"asal": "jawa"},
	}
	data.Nested.Minutes = 30
	require.NoError(t, writer.Serialize(context.Background(), data))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Nested.Minutes")
	assert.Contains(t, out, "Tags.[0]")
	assert.Contains(t, out, "Meta.asal")
	assert.Contains(t, out, "Ptr")
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), 42))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "42")
}

func TestWriter_SerializeCSV(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatCSV, &buf)

	require.NoError(t, writer.Serialize(context.Background(), testTable{rows: [][]string{{"1", "Soto"}}}))
	assert.Equal(t, "NO,JUDUL\n1,Soto\n", buf.String())

	err := writer.Serialize(context.Background(), testConfig{})
	assert.Error(t, err)
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	assert.Equal(t, FormatJSON, writer.format)
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	assert.Equal(t, os.Stdout, writer.output)
}

func TestWriter_Close(t *testing.T) {
	writer := NewWriter(FormatJSON, &bytes.Buffer{})
	assert.NoError(t, writer.Close())
	assert.NoError(t, writer.Close())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatJSON, "  ")
		require.NoError(t, err)
		w, ok := s.(*Writer)
		require.True(t, ok)
		assert.Equal(t, os.Stdout, w.output)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		s, err := NewFileWriterOrStdout(FormatJSON, path)
		require.NoError(t, err)
		require.NoError(t, s.Serialize(context.Background(), testConfig{Name: "soto", Value: 1}))
		require.NoError(t, s.(Closer).Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"name": "soto"`)
	})

	t.Run("configmap", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatYAML, "cm://dapur/daftar")
		require.NoError(t, err)
		_, ok := s.(*ConfigMapWriter)
		assert.True(t, ok)
	})

	t.Run("bad configmap", func(t *testing.T) {
		_, err := NewFileWriterOrStdout(FormatYAML, "cm://dapur")
		assert.Error(t, err)
	})

	t.Run("bad directory", func(t *testing.T) {
		_, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
		assert.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.Equal(t, "yaml", FormatYAML.Extension())
	assert.Equal(t, "txt", FormatTable.Extension())
	assert.Equal(t, "csv", FormatCSV.Extension())
	assert.Equal(t, "json", FormatJSON.Extension())
}
