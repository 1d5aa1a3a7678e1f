// Package wordlists loads the curated word and phrase lists embedded in
// the binary: null-equivalent phrases, given names and surnames for the
// person-name heuristic, ISO 4217 currency codes, and cross-reference
// markers. Lists are parsed once and treated as immutable for the
// process lifetime; accessors return shared read-only data that is safe
// for concurrent use.
package wordlists

import (
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
)

type phraseFile struct {
	Phrases []string `yaml:"phrases"`
}

type nameFile struct {
	Names []string `yaml:"names"`
}

type codeFile struct {
	Codes []string `yaml:"codes"`
}

type markerFile struct {
	Backward []string `yaml:"backward"`
	Forward  []string `yaml:"forward"`
}

var (
	loadOnce sync.Once

	nullPhrases     []string
	givenNames      []string
	surnames        []string
	currencies      []string
	backwardMarkers []string
	forwardMarkers  []string
)

// load parses every embedded list exactly once. The data ships inside
// the binary, so a parse failure is a build defect and panics.
func load() {
	loadOnce.Do(func() {
		var phrases phraseFile
		mustParse("data/nullphrases.yaml", &phrases)
		nullPhrases = phrases.Phrases

		var given nameFile
		mustParse("data/givennames.yaml", &given)
		givenNames = given.Names

		var sur nameFile
		mustParse("data/surnames.yaml", &sur)
		surnames = sur.Names

		var curr codeFile
		mustParse("data/currencies.yaml", &curr)
		currencies = curr.Codes

		var markers markerFile
		mustParse("data/markers.yaml", &markers)
		backwardMarkers = markers.Backward
		forwardMarkers = markers.Forward
	})
}

func mustParse(path string, out any) {
	data, err := FS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("wordlists: reading embedded %s: %v", path, err))
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("wordlists: parsing embedded %s: %v", path, err))
	}
}

// NullPhrases returns the phrases that mean "no data present".
func NullPhrases() []string {
	load()
	return nullPhrases
}

// GivenNames returns the curated given-name list.
func GivenNames() []string {
	load()
	return givenNames
}

// Surnames returns the curated surname list.
func Surnames() []string {
	load()
	return surnames
}

// Currencies returns the recognized ISO 4217 currency codes.
func Currencies() []string {
	load()
	return currencies
}

// BackwardMarkers returns the phrases that reference a value stated
// earlier in the same document.
func BackwardMarkers() []string {
	load()
	return backwardMarkers
}

// ForwardMarkers returns the phrases that reference a value stated
// later in the same document.
func ForwardMarkers() []string {
	load()
	return forwardMarkers
}
