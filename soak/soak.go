// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - repeatable random workloads against an AVL tree
//
// keys are derived from a seed so that a failing run can be replayed
// exactly from its configuration
package soak

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/avlbst/avl"
	"github.com/bitmark-inc/avlbst/fault"
)

// limits on key length in hex characters
const (
	minimumKeyLength = 1
	maximumKeyLength = 64
)

// Configuration - workload parameters
type Configuration struct {
	Rounds     int    `gluamapper:"rounds" json:"rounds"`
	Total      int    `gluamapper:"total" json:"total"`
	Deletions  int    `gluamapper:"deletions" json:"deletions"`
	Seed       string `gluamapper:"seed" json:"seed"`
	KeyLength  int    `gluamapper:"key_length" json:"key_length"`
	CheckEvery int    `gluamapper:"check_every" json:"check_every"`
}

// Result - totals over all rounds
type Result struct {
	Rounds    int
	Inserted  int // new keys
	Updated   int // inserts of an existing key
	Deleted   int
	Checks    int
	MaxHeight int
}

// Validate - ensure the configuration is usable
func (c *Configuration) Validate() error {
	if c.Rounds < 1 || c.Total < 0 || c.Deletions < 0 || c.Deletions > c.Total || c.CheckEvery < 0 {
		return fault.ErrInvalidCount
	}
	if c.KeyLength < minimumKeyLength || c.KeyLength > maximumKeyLength {
		return fault.ErrInvalidKey
	}
	return nil
}

// Key - the deterministic key for an index within a round
func Key(seed string, round int, index int, length int) avl.StringItem {
	digest := sha3.Sum256([]byte(fmt.Sprintf("%s:%d:%d", seed, round, index)))
	return avl.StringItem(hex.EncodeToString(digest[:])[:length])
}

// Run - execute all rounds, stopping at the first failed check
//
// log is optional
func Run(config *Configuration, log *logger.L) (*Result, error) {
	if err := config.Validate(); nil != err {
		return nil, err
	}

	result := &Result{}
	for round := 0; round < config.Rounds; round += 1 {
		if err := runRound(config, round, result, log); nil != err {
			if nil != log {
				log.Errorf("round: %d  failed: %s", round, err)
			}
			return result, err
		}
		result.Rounds += 1
		if nil != log {
			log.Infof("round: %d  inserted: %d  deleted: %d  checks: %d", round, result.Inserted, result.Deleted, result.Checks)
		}
	}
	return result, nil
}

// a single round, the tree must be empty at the end
func runRound(config *Configuration, round int, result *Result, log *logger.L) error {
	tree := avl.New()
	present := make(map[avl.StringItem]string)
	mutations := 0

	check := func() error {
		result.Checks += 1
		if err := tree.Check(); nil != err {
			return err
		}
		if len(present) != tree.Count() {
			return fault.ErrCountMismatch
		}
		if h := tree.Height(); h > result.MaxHeight {
			result.MaxHeight = h
		}
		return nil
	}
	mutated := func() error {
		mutations += 1
		if config.CheckEvery > 0 && 0 == mutations%config.CheckEvery {
			return check()
		}
		return nil
	}

	keys := make([]avl.StringItem, config.Total)
	for i := range keys {
		key := Key(config.Seed, round, i, config.KeyLength)
		keys[i] = key
		value := fmt.Sprintf("%d:%d", round, i)

		_, exists := present[key]
		if tree.Insert(key, value) == exists {
			return fault.ErrCountMismatch
		}
		if exists {
			result.Updated += 1
		} else {
			result.Inserted += 1
		}
		present[key] = value

		if err := mutated(); nil != err {
			return err
		}
	}
	if err := check(); nil != err {
		return err
	}

	// a repeated key must always be reported absent the second time
	remove := func(key avl.StringItem) error {
		expected, exists := present[key]
		value, ok := tree.Delete(key)
		if ok != exists || (ok && value != expected) {
			if nil != log {
				log.Warnf("delete: %q  returned: %v  expected: %q", key, value, expected)
			}
			return fault.ErrCountMismatch
		}
		if !ok {
			return nil
		}
		delete(present, key)
		result.Deleted += 1
		return mutated()
	}

	for _, key := range keys[:config.Deletions] {
		if err := remove(key); nil != err {
			return err
		}
	}
	if err := check(); nil != err {
		return err
	}

	for _, key := range keys {
		if err := remove(key); nil != err {
			return err
		}
	}
	if err := check(); nil != err {
		return err
	}
	if !tree.IsEmpty() {
		return fault.ErrTreeNotEmpty
	}
	return nil
}
