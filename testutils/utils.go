// Package testutils provides general purpose utility functions for unit/integration testing.
package testutils

import (
	"math/rand"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ballotTypes "github.com/ballot-network/ballot-core/x/ballot/types"
)

var (
	cdc *codec.Codec
)

// Codec creates a codec for testing with all necessary types registered.
// This codec is not sealed so tests can add their own mock types.
func Codec() *codec.Codec {
	// Use cache if initialized before
	if cdc != nil {
		return cdc
	}

	cdc = codec.New()

	sdk.RegisterCodec(cdc)

	// Add new modules here so tests have access to marshalling the registered types
	ballotTypes.RegisterCodec(cdc)

	return cdc
}

// RandString returns a random string of letters of the given length
func RandString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	s := make([]rune, n)
	for i := range s {
		s[i] = letters[rand.Intn(len(letters))]
	}
	return string(s)
}

// RandIntBetween returns a single random integer between lower (inclusive) and upper (exclusive).
// It panics if upper <= lower.
func RandIntBetween(lower int64, upper int64) int64 {
	return rand.Int63n(upper-lower) + lower
}

// RandIntGen represents an random integer generator.
// Call Stop when done so dangling goroutines can be cleaned up.
type RandIntGen struct {
	ch      chan int64
	done    chan struct{}
	wrapped *RandIntGen
}

// RandInts returns a random integer generator for positive integers.
func RandInts() RandIntGen {
	return generate(rand.Int63)
}

// RandIntsBetween returns a random integer generator for numbers between lower (inclusive) and upper (exclusive).
// It panics if  upper <= lower.
func RandIntsBetween(lower int64, upper int64) RandIntGen {
	return generate(func() int64 { return rand.Int63n(upper-lower) + lower })
}

// Where restricts the output of the underlying generator to adhere to the predicate.
// If the predicate is not satisfiable the Take function will deadlock.
func (g RandIntGen) Where(predicate func(i int64) bool) RandIntGen {
	newGen := RandIntGen{ch: make(chan int64), wrapped: &g}
	go func() {
		// cascade channel close when underlying generator channel closes
		defer close(newGen.ch)
		for n := range g.ch {
			if predicate(n) {
				newGen.ch <- n
			}
		}
	}()
	return newGen
}

// Take returns a slice of random integers of the given length.
func (g RandIntGen) Take(count int) []int64 {
	nums := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		nums = append(nums, <-g.ch)
	}
	return nums
}

// Next returns a single random integer.
func (g RandIntGen) Next() int64 {
	return <-g.ch
}

// Stop closes all goroutines used during number generation.
func (g *RandIntGen) Stop() {
	// stop the deepest wrapped channel in
	if g.wrapped != nil {
		g.wrapped.Stop()
	} else {
		close(g.done)
	}

	// The underlying generator might be stuck in the default select case trying to push a value into the channel,
	// so we need to make sure it is unstuck to be able to close the output channel
	<-g.ch
}

func generate(generator func() int64) RandIntGen {
	g := RandIntGen{ch: make(chan int64), done: make(chan struct{}), wrapped: nil}
	go func() {
		for {
			select {
			case <-g.done:
				close(g.ch)
				return
			default:
				g.ch <- generator()
			}
		}
	}()
	return g
}

// RandStringGen represents a random string generator.
// Call Stop when done so dangling goroutines can be cleaned up.
type RandStringGen struct {
	ch      chan string
	lengths RandIntGen
}

// RandStrings returns a random string generator that produces strings
// with lengths between lower (inclusive) and upper (inclusive).
func RandStrings(lower int, upper int) RandStringGen {
	g := RandStringGen{ch: make(chan string), lengths: RandIntsBetween(int64(lower), int64(upper)+1)}
	go func() {
		// cascade channel close when the length generator channel closes
		defer close(g.ch)
		for n := range g.lengths.ch {
			g.ch <- RandString(int(n))
		}
	}()
	return g
}

// Distinct restricts the output of the underlying generator to distinct strings.
func (g RandStringGen) Distinct() RandDistinctStringGen {
	newGen := RandDistinctStringGen{ch: make(chan string), wrapped: g}
	go func() {
		// cascade channel close when underlying generator channel closes
		defer close(newGen.ch)
		previous := make(map[string]struct{})
		for s := range g.ch {
			if _, ok := previous[s]; ok {
				continue
			}
			previous[s] = struct{}{}
			newGen.ch <- s
		}
	}()
	return newGen
}

// Take returns a slice of random strings of the given length.
func (g RandStringGen) Take(count int) []string {
	s := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s = append(s, <-g.ch)
	}
	return s
}

// Next returns a single random string.
func (g RandStringGen) Next() string {
	return <-g.ch
}

// Stop closes all goroutines used during string generation.
func (g RandStringGen) Stop() {
	g.lengths.Stop()

	// The underlying generator might be stuck trying to push a value into the channel,
	// so we need to make sure it is unstuck to be able to close the output channel
	<-g.ch
}

// RandDistinctStringGen represents a random string generator that never returns the same string twice.
// Call Stop when done so dangling goroutines can be cleaned up.
type RandDistinctStringGen struct {
	ch      chan string
	wrapped RandStringGen
}

// Take returns a slice of distinct random strings of the given length.
func (g RandDistinctStringGen) Take(count int) []string {
	s := make([]string, 0, count)
	for i := 0; i < count; i++ {
		s = append(s, <-g.ch)
	}
	return s
}

// Next returns a single random string that has not been generated before.
func (g RandDistinctStringGen) Next() string {
	return <-g.ch
}

// Stop closes all goroutines used during string generation.
func (g RandDistinctStringGen) Stop() {
	g.wrapped.Stop()

	// The underlying generator might be stuck trying to push a value into the channel,
	// so we need to make sure it is unstuck to be able to close the output channel
	<-g.ch
}

// RandBoolGen represents an random bool generator.
// Call Stop when done so dangling goroutines can be cleaned up.
type RandBoolGen struct {
	ch   chan bool
	done chan struct{}
}

// RandBools returns a random bool generator that adheres to the given ratio of true to false values.
func RandBools(ratio float64) RandBoolGen {
	g := RandBoolGen{ch: make(chan bool), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-g.done:
				close(g.ch)
				return
			default:
				g.ch <- rand.Float64() < ratio
			}
		}
	}()
	return g
}

// Take returns a slice of random bools of the given length.
func (g RandBoolGen) Take(count int) []bool {
	res := make([]bool, 0, count)
	for i := 0; i < count; i++ {
		res = append(res, <-g.ch)
	}
	return res
}

// Next returns a single random bool.
func (g RandBoolGen) Next() bool {
	return <-g.ch
}

// Stop closes all goroutines used during bool generation.
func (g RandBoolGen) Stop() {
	close(g.done)

	// The underlying generator might be stuck in the default select case trying to push a value into the channel,
	// so we need to make sure it is unstuck to be able to close the output channel
	<-g.ch
}
