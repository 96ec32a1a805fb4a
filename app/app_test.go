package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/ballot-network/ballot-core/app"
)

func TestNewBallotApp(t *testing.T) {
	assert.NotPanics(t, func() {
		app.NewBallotApp(log.TestingLogger(), dbm.NewMemDB(), nil, true, 0)
	})
}

func TestMakeCodecIsSealed(t *testing.T) {
	cdc := app.MakeCodec()

	assert.Panics(t, func() { cdc.RegisterConcrete(struct{}{}, "sneakyRegistration", nil) })
}
