/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// keyedBlockLen is the number of keystream bytes produced per refill.
const keyedBlockLen = 4096

// KeyedSource is a deterministic math/rand/v2 Source whose output is
// the salsa20 keystream for a 32-byte key. Two sources created with
// the same key produce the same sequence on every platform.
//
// The keystream is generated in blocks; block i uses the little-endian
// encoding of i as its 8-byte nonce.
type KeyedSource struct {
	key   [32]byte
	block uint64
	in    []byte // all zeros, so XORing it yields the raw keystream
	buf   []byte
	pos   int
}

// NewKeyedSource returns a KeyedSource for the given key.
// The key is copied.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	return &KeyedSource{key: *key}
}

// Uint64 returns the next 8 keystream bytes as a little-endian
// unsigned integer.
func (s *KeyedSource) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8

	return v
}

func (s *KeyedSource) refill() {
	if s.buf == nil {
		s.in = make([]byte, keyedBlockLen)
		s.buf = make([]byte, keyedBlockLen)
	}
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.block)

	salsa20.XORKeyStream(s.buf, s.in, nonce, &s.key)
	s.block++
	s.pos = 0
}
