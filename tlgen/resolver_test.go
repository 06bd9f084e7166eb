package tlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tlgen/errors"
)

func TestResolverCasesSchemaNames(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	ident, err := r.Resolve("messageText", ScopeType, "")
	require.NoError(t, err)
	assert.Equal(t, "MessageText", ident)

	ident, err = r.Resolve("chat_id", ScopeField, "type:message")
	require.NoError(t, err)
	assert.Equal(t, "ChatID", ident)
}

func TestResolverStable(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	first, err := r.Resolve("message", ScopeType, "")
	require.NoError(t, err)
	second, err := r.Resolve("message", ScopeType, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Issued(ScopeType, ""))

	got, ok := r.Lookup("message", ScopeType, "")
	assert.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = r.Lookup("message", ScopeEnum, "")
	assert.False(t, ok)
}

func TestResolverSuffixOnCollision(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	rec, err := r.Resolve("message", ScopeType, "")
	require.NoError(t, err)
	enum, err := r.Resolve("Message", ScopeEnum, "")
	require.NoError(t, err)

	assert.Equal(t, "Message", rec)
	assert.Equal(t, "MessageEnum", enum)
}

func TestResolverQualifiesNamespacedNames(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	tests := []struct {
		raw   string
		scope Scope
		want  string
	}{
		{"photo", ScopeType, "Photo"},
		{"secret.photo", ScopeType, "SecretPhoto"},
		{"Photo", ScopeEnum, "PhotoEnum"},
		{"secret.Photo", ScopeEnum, "SecretPhotoEnum"},
		{"auth.sentCode", ScopeType, "SentCode"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.raw, tt.scope, "")
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestResolverEscapesReserved(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	ident, err := r.Resolve("reserved", ScopeType, "")
	require.NoError(t, err)
	assert.Equal(t, "Reserved_", ident)
}

func TestResolverFieldsPerOwner(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	a, err := r.Resolve("chat_id", ScopeField, "type:chat")
	require.NoError(t, err)
	b, err := r.Resolve("chat_id", ScopeField, "function:getChat")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// fields never compete with types
	_, err = r.Resolve("chatID", ScopeType, "")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Issued(ScopeField, "type:chat"))
}

func TestResolverCollision(t *testing.T) {
	r := NewResolver((&fakeBackend{suffixes: map[Scope]string{}}).Naming())

	_, err := r.Resolve("message", ScopeType, "")
	require.NoError(t, err)
	_, err = r.Resolve("Message", ScopeEnum, "")
	require.Error(t, err)

	assert.True(t, errors.IsIdentifierCollision(err))
	assert.Contains(t, err.Error(), `"message"`)
	assert.Contains(t, err.Error(), `"Message"`)
	assert.Contains(t, err.Error(), "enum scope")
}

func TestResolverDerive(t *testing.T) {
	r := NewResolver((&fakeBackend{}).Naming())

	ident, err := r.Derive("MessageContent", "DecodeMessageContent", ScopeHelper, "")
	require.NoError(t, err)
	assert.Equal(t, "DecodeMessageContent", ident)

	// helpers share the package namespace with records
	ident, err = r.Resolve("decodeMessageContent", ScopeType, "")
	require.NoError(t, err)
	assert.Equal(t, "DecodeMessageContentType", ident)
}
