package numeral_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/trnltk/pkg/numeral"
)

func TestToText(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"0", "sıfır"},
		{"5", "beş"},
		{"10", "on"},
		{"12", "on iki"},
		{"200", "iki yüz"},
		{"1000", "bin"},
		{"1001", "bin bir"},
		{"1100", "bin yüz"},
		{"1111", "bin yüz on bir"},
		{"1234", "bin iki yüz otuz dört"},
		{"5601", "beş bin altı yüz bir"},
		{"999999", "dokuz yüz doksan dokuz bin dokuz yüz doksan dokuz"},
		{"1000000", "bir milyon"},
		{"2000001", "iki milyon bir"},
		{"1.000", "bin"},
		{"9.999", "dokuz bin dokuz yüz doksan dokuz"},

		{"-0", "sıfır"},
		{"-5", "eksi beş"},
		{"-1000", "eksi bin"},
		{"+12", "on iki"},

		{"007", "sıfır sıfır yedi"},
		{"3,5", "üç virgül beş"},
		{"0,000", "sıfır virgül sıfır sıfır sıfır"},
		{"0,001", "sıfır virgül sıfır sıfır bir"},
		{"-10,896", "eksi on virgül sekiz yüz doksan altı"},
		{"+2567,01000", "iki bin beş yüz altmış yedi virgül sıfır bin"},
		{"000,000", "sıfır sıfır sıfır virgül sıfır sıfır sıfır"},
	}
	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			got, err := numeral.ToText(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToText_Largest(t *testing.T) {
	got, err := numeral.ToText(strings.Repeat("9", numeral.MaxDigits))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "dokuz yüz doksan dokuz vigintilyon dokuz yüz doksan dokuz novemdesilyon"), got)
	assert.True(t, strings.HasSuffix(got, "milyon dokuz yüz doksan dokuz bin dokuz yüz doksan dokuz"), got)

	_, err = numeral.ToText("1" + strings.Repeat("0", numeral.MaxDigits))
	assert.ErrorIs(t, err, numeral.ErrInvalidNumber)
}

func TestToText_Invalid(t *testing.T) {
	for _, digits := range []string{"", "abc", "3,", ",5", "1-2", "3'", "--1"} {
		_, err := numeral.ToText(digits)
		assert.ErrorIs(t, err, numeral.ErrInvalidNumber, digits)
	}
}
