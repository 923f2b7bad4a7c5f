package fetch

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMkdirp(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	nested := filepath.Join(dir, "a", "b", "c")
	assert.NoError(t, Mkdirp(nested))

	info, err := os.Stat(nested)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// already present
	assert.NoError(t, Mkdirp(nested))

	// empty path is a no-op
	assert.NoError(t, Mkdirp(""))
}

func TestSplitAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitAll("a/b/c"))
	assert.Equal(t, []string{"/", "a", "b"}, SplitAll("/a/b"))
	assert.Equal(t, []string{"a"}, SplitAll("a"))
	assert.Equal(t, []string{"/"}, SplitAll("/"))
}
