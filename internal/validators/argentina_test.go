package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCUITValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"20-12345678-6", true},
		{"30712345671", true},
		{"27-30111222-5", true},
		{"20-12345678-5", false},
		{"30-12345678", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, IsCUITValid(c.in), c.in)
	}
}

func TestFormatCUIT(t *testing.T) {
	assert.Equal(t, "20-12345678-6", FormatCUIT("20123456786"))
	assert.Equal(t, "20-12345678-6", FormatCUIT("20.12345678.6"))
	assert.Equal(t, "123", FormatCUIT("123"))
}

func TestFormatPhoneAR(t *testing.T) {
	assert.Equal(t, "+5411-4567-8901", FormatPhoneAR("1145678901"))
	assert.Equal(t, "+5411-4567-8901", FormatPhoneAR("+54 11 4567 8901"))
	assert.Equal(t, "351 555 1234", FormatPhoneAR("351 555 1234"))
}
