package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasEmailSyntax(t *testing.T) {
	assert.True(t, HasEmailSyntax("jamie@example.com"))
	assert.True(t, HasEmailSyntax("a.b+tag@sub.example.co"))

	assert.False(t, HasEmailSyntax(""))
	assert.False(t, HasEmailSyntax("no-at-sign"))
	assert.False(t, HasEmailSyntax("@example.com"))
	assert.False(t, HasEmailSyntax("jamie@"))
	assert.False(t, HasEmailSyntax("jamie@localhost"))
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	// DNS-independent cases only.
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("jamie@"))
}
