package services

import (
	"testing"

	"facility-finder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret!"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestLDAPUsername(t *testing.T) {
	cases := map[string]string{
		"jdoe":             "jdoe",
		"  jdoe ":          "jdoe",
		"jdoe@example.com": "jdoe",
		"JDoe@EXAMPLE.COM": "JDoe",
		"@example.com":     "@example.com",
	}
	for in, want := range cases {
		assert.Equal(t, want, ldapUsername(in), in)
	}
}

func TestRolesFromGroups(t *testing.T) {
	admins := "cn=facility-admins,ou=groups,dc=example,dc=com"

	assert.Equal(t, []string{models.RoleAdmin}, rolesFromGroups(nil, ""))
	assert.Equal(t, []string{models.RoleAdmin},
		rolesFromGroups([]string{"cn=staff,dc=example,dc=com", "CN=Facility-Admins,OU=Groups,DC=example,DC=com"}, admins))
	assert.Empty(t, rolesFromGroups([]string{"cn=staff,dc=example,dc=com"}, admins))
}
