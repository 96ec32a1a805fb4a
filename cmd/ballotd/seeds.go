package main

import (
	"strings"

	"github.com/spf13/viper"
	tmconfig "github.com/tendermint/tendermint/config"
)

type seedNode struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

// readSeeds loads the addresses listed in a seeds.toml file in the node's config
// directory. Operators can distribute additional seed nodes through that file
// without touching config.toml.
func readSeeds(v *viper.Viper) ([]string, error) {
	v.SetConfigName("seeds")
	v.SetConfigType("toml")

	if err := v.MergeInConfig(); err != nil {
		return nil, err
	}

	var nodes []seedNode
	if err := v.UnmarshalKey("seed", &nodes); err != nil {
		return nil, err
	}

	seeds := make([]string, 0, len(nodes))
	for _, node := range nodes {
		seeds = append(seeds, node.Address)
	}

	return seeds, nil
}

// mergeSeeds adds the given seeds to the ones already configured, dropping duplicates
func mergeSeeds(cfg *tmconfig.Config, seeds []string) *tmconfig.Config {
	all := append(strings.Split(cfg.P2P.Seeds, ","), seeds...)

	seen := make(map[string]struct{})
	var distinct []string
	for _, seed := range all {
		if _, ok := seen[seed]; ok {
			continue
		}
		seen[seed] = struct{}{}
		distinct = append(distinct, seed)
	}

	cfg.P2P.Seeds = strings.Join(distinct, ",")
	return cfg
}
