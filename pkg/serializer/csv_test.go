package serializer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{
			name: "simple",
			in:   "Judul,Bahan,Langkah,Waktu\nSoto,Ayam,Rebus,30\n",
			want: [][]string{{"Judul", "Bahan", "Langkah", "Waktu"}, {"Soto", "Ayam", "Rebus", "30"}},
		},
		{
			name: "byte order mark",
			in:   "\xEF\xBB\xBFJudul,Bahan\n",
			want: [][]string{{"Judul", "Bahan"}},
		},
		{
			name: "quoted multiline",
			in:   "\"Es, Teler\",\"1. alpukat\n2. kelapa\",x,5\n",
			want: [][]string{{"Es, Teler", "1. alpukat\n2. kelapa", "x", "5"}},
		},
		{
			name: "ragged rows",
			in:   "a,b,c,d\ne,f\n",
			want: [][]string{{"a", "b", "c", "d"}, {"e", "f"}},
		},
		{
			name: "crlf",
			in:   "a,b\r\nc,d\r\n",
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "blank line kept as empty record",
			in:   "a,b\n\nc,d\n",
			want: [][]string{{"a", "b"}, {}, {"c", "d"}},
		},
		{
			name: "blank line after multiline record",
			in:   "\"x\ny\",z\n\r\nq\n",
			want: [][]string{{"x\ny", "z"}, {}, {"q"}},
		},
		{
			name: "trailing blank lines dropped",
			in:   "a,b\n\n\n",
			want: [][]string{{"a", "b"}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\"unterminated,a\n"))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{
		{"Judul", "Bahan", "Langkah", "Waktu"},
		{"Es \"Teler\"", "1. alpukat\n2. kelapa", "1. campur", "5"},
	}
	require.NoError(t, WriteCSV(&buf, rows))
	assert.Equal(t,
		"Judul,Bahan,Langkah,Waktu\n\"Es \"\"Teler\"\"\",\"1. alpukat\n2. kelapa\",1. campur,5\n",
		buf.String())

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}
