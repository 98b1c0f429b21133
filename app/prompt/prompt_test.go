package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompter_Sequence(t *testing.T) {
	out := bytes.Buffer{}
	p := Prompter{In: strings.NewReader("  https://www.youtube.com/@gotalks \n\ny\n\n"), Out: &out}

	assert.Equal(t, "https://www.youtube.com/@gotalks", p.String("url: ", ""))
	assert.Equal(t, 50, p.Int("max: ", 50))
	assert.True(t, p.Bool("save? ", false))
	assert.Equal(t, "youtube_data.xlsx", p.String("file: ", "youtube_data.xlsx"))
	assert.Equal(t, "url: max: save? file: ", out.String())
}

func TestPrompter_Int(t *testing.T) {
	out := bytes.Buffer{}
	p := Prompter{In: strings.NewReader("abc\n-3\n25\n"), Out: &out}
	assert.Equal(t, 25, p.Int("max: ", 50))
	assert.Equal(t, "max: \"abc\" is not a valid number\nmax: \"-3\" is not a valid number\nmax: ", out.String())

	p = Prompter{In: strings.NewReader("0\n"), Out: &bytes.Buffer{}}
	assert.Equal(t, 0, p.Int("max: ", 50))
}

func TestPrompter_Bool(t *testing.T) {
	tbl := []struct {
		inp string
		def bool
		res bool
	}{
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"No\n", true, false},
		{"\n", true, true},
		{"maybe\nn\n", true, false},
	}
	for _, tt := range tbl {
		p := Prompter{In: strings.NewReader(tt.inp), Out: &bytes.Buffer{}}
		assert.Equal(t, tt.res, p.Bool("save? ", tt.def), tt.inp)
	}
}

func TestPrompter_ClosedInput(t *testing.T) {
	out := bytes.Buffer{}
	p := Prompter{In: strings.NewReader(""), Out: &out}
	assert.Equal(t, "def", p.String("url: ", "def"))
	assert.Equal(t, 7, p.Int("max: ", 7))
	assert.False(t, p.Bool("save? ", false))
	assert.Equal(t, "url: \nmax: \nsave? \n", out.String())
}
