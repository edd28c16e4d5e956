package phonetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/trnltk/pkg/domain"
)

func TestIsValid_AnalyzedSurfaces(t *testing.T) {
	words := []string{
		"a", "e", "o", "kitap", "kapı", "ev", "göz", "saat", "st", "kral", "ağaç", "üzüm",
		"ılık", "ördek", "su", "kitaba", "yapıyor", "f", "ş", "pr",
	}
	for _, w := range words {
		attrs := Attributes(w, 0)
		assert.True(t, IsValid(attrs), "%s -> %s", w, attrs)
	}
}

func TestIsValid_Rejects(t *testing.T) {
	assert.False(t, IsValid(0))

	// both last-letter classes
	assert.False(t, IsValid(Attributes("kitap", 0).With(domain.LastLetterVowel)))
	// vowel-final without a last vowel
	assert.False(t, IsValid(domain.NewPhoneticAttributes(domain.FirstLetterConsonant, domain.LastLetterVowel, domain.LastLetterNotVoiceless, domain.HasNoVowel)))
	// voiceless stop on a vowel
	assert.False(t, IsValid(Attributes("kapı", 0).With(domain.LastLetterVoicelessStop)))
	// frontal and back at once
	assert.False(t, IsValid(Attributes("ev", 0).With(domain.LastVowelBack)))
}

func TestAttributeSets(t *testing.T) {
	sets := NewAttributeSets()
	assert.NotZero(t, sets.Len())
	assert.Len(t, sets.All(), sets.Len())

	for _, s := range sets.All() {
		assert.True(t, IsValid(s))
		assert.True(t, sets.Contains(s))
	}
	assert.False(t, sets.Contains(0))
	assert.True(t, sets.Contains(Attributes("kitap", 0)))

	prev := domain.PhoneticAttributes(0)
	for i, s := range sets.All() {
		if i > 0 {
			assert.Greater(t, s, prev)
		}
		prev = s
	}
}

func TestCompile(t *testing.T) {
	for _, form := range []string{"", "+yA", "lAr!I", "!k", "+ImsI", "mAktA", "cIk", "dAn"} {
		_, err := Compile(form)
		assert.NoError(t, err, form)
	}
	for _, form := range []string{"l+Ar", "lEr", "!a", "x#"} {
		_, err := Compile(form)
		assert.Error(t, err, form)
	}

	assert.True(t, MustCompile("+yA").FirstLetterVowel())
	assert.True(t, MustCompile("Iyor").FirstLetterVowel())
	assert.False(t, MustCompile("dA").FirstLetterVowel())
	assert.True(t, MustCompile("").IsBlank())
}
