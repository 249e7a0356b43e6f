/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errticket

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-password/password"
)

// IDPrefix starts every generated ticket id.
const IDPrefix = "et"

const (
	consonants = "bcdfghjklmnprstvz"
	vowels     = "aeiou"
	syllables  = 5
	idDigits   = 3
)

var idGen = sync.OnceValues(func() ([2]*password.Generator, error) {
	c, err := password.NewGenerator(&password.GeneratorInput{LowerLetters: consonants})
	if err != nil {
		return [2]*password.Generator{}, err
	}
	v, err := password.NewGenerator(&password.GeneratorInput{LowerLetters: vowels})
	if err != nil {
		return [2]*password.Generator{}, err
	}
	return [2]*password.Generator{c, v}, nil
})

// NewID returns a fresh pronounceable ticket id such as "etkobavuneri417".
//
// Ids are meant for correlating log lines with responses; they are random
// but not a security token.
func NewID() string {
	if id, err := pronounceable(); err == nil {
		return IDPrefix + id
	}
	return IDPrefix + strconv.FormatInt(time.Now().UnixNano(), 36)
}

func pronounceable() (string, error) {
	gens, err := idGen()
	if err != nil {
		return "", err
	}
	cs, err := gens[0].Generate(syllables, 0, 0, true, true)
	if err != nil {
		return "", err
	}
	vs, err := gens[1].Generate(syllables, 0, 0, true, true)
	if err != nil {
		return "", err
	}
	ds, err := password.Generate(idDigits, idDigits, 0, true, true)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(2*syllables + idDigits)
	for i := 0; i < syllables; i++ {
		sb.WriteByte(cs[i])
		sb.WriteByte(vs[i])
	}
	sb.WriteString(ds)
	return sb.String(), nil
}
