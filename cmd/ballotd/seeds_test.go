package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	tmconfig "github.com/tendermint/tendermint/config"
)

func TestReadSeeds(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		dir := writeSeedsFile(t, `
[[seed]]
name = "node1"
address = "aaa@1.2.3.4:26656"

[[seed]]
name = "node2"
address = "bbb@5.6.7.8:26656"
`)
		v := viper.New()
		v.AddConfigPath(dir)

		seeds, err := readSeeds(v)
		assert.NoError(t, err)
		assert.Equal(t, []string{"aaa@1.2.3.4:26656", "bbb@5.6.7.8:26656"}, seeds)
	})

	t.Run("file exists but is empty", func(t *testing.T) {
		dir := writeSeedsFile(t, "")
		v := viper.New()
		v.AddConfigPath(dir)

		seeds, err := readSeeds(v)
		assert.NoError(t, err)
		assert.Len(t, seeds, 0)
	})

	t.Run("file does not exist", func(t *testing.T) {
		v := viper.New()
		v.AddConfigPath("some other path")

		seeds, err := readSeeds(v)
		assert.True(t, errors.As(err, &viper.ConfigFileNotFoundError{}))
		assert.Len(t, seeds, 0)
	})
}

func TestMergeSeeds(t *testing.T) {
	cfg := &tmconfig.Config{P2P: &tmconfig.P2PConfig{Seeds: "a,b,c,d"}}

	cfg = mergeSeeds(cfg, []string{"b", "d", "f", "z"})

	assert.Equal(t, "a,b,c,d,f,z", cfg.P2P.Seeds)
}

func writeSeedsFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "seeds")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	assert.NoError(t, ioutil.WriteFile(filepath.Join(dir, "seeds.toml"), []byte(content), 0644))
	return dir
}
