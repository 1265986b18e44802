package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitExt(t *testing.T) {
	cases := []struct {
		name, stem, ext string
	}{
		{"main.cpp", "main", ".cpp"},
		{"archive.tar.h", "archive.tar", ".h"},
		{"Makefile", "Makefile", ""},
		{".h", ".h", ""},
		{"..inl", "..inl", ""},
		{".hidden.c", ".hidden", ".c"},
	}
	for _, tc := range cases {
		stem, ext := SplitExt(tc.name)
		assert.Equal(t, tc.stem, stem, tc.name)
		assert.Equal(t, tc.ext, ext, tc.name)
	}
}

func TestIsSource(t *testing.T) {
	for _, name := range []string{"a.c", "a.cpp", "a.CPP", "a.h", "a.hpp", "a.cc", "a.inl", "a.m", "a.mm"} {
		assert.True(t, IsSource(name), name)
	}
	for _, name := range []string{"README.md", "a.txt", "Makefile", ".h", "a.mkb", "a.cxx", "start.S", "start.s"} {
		assert.False(t, IsSource(name), name)
	}
}

func TestIsHeader(t *testing.T) {
	assert.True(t, IsHeader("a.h"))
	assert.True(t, IsHeader("a.HPP"))
	assert.True(t, IsHeader("a.inl"))
	assert.False(t, IsHeader("a.cpp"))
	assert.False(t, IsHeader("a.mm"))
}

func TestNeedsQuote(t *testing.T) {
	plain := []string{"main.cpp", "my_file-2.h", "ABC.c", "noext"}
	for _, name := range plain {
		assert.False(t, NeedsQuote(name), name)
	}
	quoted := []string{"my file.cpp", "a+b.h", "x(1).c", "name.part.cpp", "über.c"}
	for _, name := range quoted {
		assert.True(t, NeedsQuote(name), name)
	}
}

func TestNeedsQuoteIsStable(t *testing.T) {
	for _, name := range []string{"a b.c", "ok.c"} {
		first := NeedsQuote(name)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, NeedsQuote(name))
		}
	}
}

func TestFileToken(t *testing.T) {
	assert.Equal(t, "main.cpp", FileToken("main.cpp"))
	assert.Equal(t, `"my file.cpp"`, FileToken("my file.cpp"))
}

func TestDirToken(t *testing.T) {
	assert.Equal(t, "src/core", DirToken("src/core"))
	assert.Equal(t, `"src/test"`, DirToken("src/test"))
	assert.Equal(t, `"tests/unit"`, DirToken("tests/unit"))
	assert.Equal(t, `"options"`, DirToken("options"))
	assert.Equal(t, "testing/files2", DirToken("testing/files2"))
	assert.Equal(t, "mytest", DirToken("mytest"))
	assert.Equal(t, ".", DirToken("."))
}
