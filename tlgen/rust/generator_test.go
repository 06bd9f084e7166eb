package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tlgen/tl"
	"github.com/teranos/tlgen/tlgen"
)

// =============================================================================
// Test helpers
// =============================================================================

func generate(t *testing.T, split bool) map[string]string {
	t.Helper()
	schema, err := tl.LoadFile("../testdata/td_api.yaml", "")
	require.NoError(t, err)

	opts := tlgen.Options{Backend: New(Options{}), Header: tlgen.NoHeader}
	if !split {
		var sb strings.Builder
		require.NoError(t, tlgen.Generate(&sb, schema.Definitions, opts))
		return map[string]string{"lib.rs": sb.String()}
	}

	files, err := tlgen.GenerateUnits(schema.Definitions, opts)
	require.NoError(t, err)
	out := make(map[string]string)
	for _, f := range files {
		out[f.Name] = string(f.Content)
	}
	return out
}

// =============================================================================
// Module layout tests
// =============================================================================

func TestGenerateSingleFile(t *testing.T) {
	out := generate(t, false)["lib.rs"]

	assert.True(t, strings.HasPrefix(out, tlgen.GeneratedMarker+"\n"))
	types := strings.Index(out, "\npub mod types {\n")
	enums := strings.Index(out, "\npub mod enums {\n")
	functions := strings.Index(out, "\npub mod functions {\n")
	require.True(t, types >= 0 && enums >= 0 && functions >= 0)
	assert.Less(t, types, enums)
	assert.Less(t, enums, functions)

	assert.Contains(t, out, "    pub struct Message {\n        /// Message identifier\n        pub id: i64,\n")
}

func TestGenerateSplitFiles(t *testing.T) {
	files := generate(t, true)
	require.Len(t, files, 3)

	types := files["types.rs"]
	assert.NotContains(t, types, "pub mod")
	assert.Contains(t, types, "\npub struct Message {\n")
	assert.NotContains(t, types, "pub enum")

	assert.Contains(t, files["enums.rs"], "\npub enum MessageContent {\n")
	assert.Contains(t, files["functions.rs"], "\npub struct GetMessage {\n")
}

// =============================================================================
// Record tests
// =============================================================================

func TestGenerateStruct(t *testing.T) {
	types := generate(t, true)["types.rs"]

	assert.Contains(t, types, "/// Describes a message\n"+derive+"\npub struct Message {\n")
	assert.Contains(t, types, "    pub chat_id: i64,\n")
	assert.Contains(t, types, "    pub is_outgoing: bool,\n")
	assert.Contains(t, types, "    pub content: super::enums::MessageContent,\n")
	assert.Contains(t, types, "    pub entities: ::std::vec::Vec<super::types::TextEntity>,\n")
	assert.Contains(t, types, "pub struct Ok {}\n")
}

func TestGenerateStruct_Untagged(t *testing.T) {
	types := generate(t, true)["types.rs"]

	// The tag is written by the enclosing enum
	assert.NotContains(t, types, "@type")
	assert.Contains(t, types, derive+"\npub struct TextEntity {\n")
}

func TestGenerateStruct_Keywords(t *testing.T) {
	types := generate(t, true)["types.rs"]

	// r# identifiers serialize under their bare name, no rename needed
	assert.Contains(t, types, "    /// Type of the entity\n    pub r#type: super::enums::TextEntityType,\n")
	assert.NotContains(t, types, `rename = "type"`)
}

func TestGenerateStruct_Int64(t *testing.T) {
	types := generate(t, true)["types.rs"]

	assert.Contains(t, types, "    #[serde(with = \"crate::int64\")]\n    pub media_album_id: i64,\n")
	assert.Contains(t, types, "    #[serde(with = \"crate::int64_vec\")]\n    pub album_ids: ::std::vec::Vec<i64>,\n")
}

func TestGenerateStruct_OptionalFields(t *testing.T) {
	types := generate(t, true)["types.rs"]

	assert.Contains(t, types, "    #[serde(default)]\n    pub caption: ::std::option::Option<::std::boxed::Box<super::types::FormattedText>>,\n")
	assert.Contains(t, types, "    #[serde(default)]\n    pub messages: ::std::option::Option<::std::vec::Vec<super::enums::Message>>,\n")
	assert.Contains(t, types, "    pub text: ::std::boxed::Box<super::types::FormattedText>,\n")
}

// =============================================================================
// Enum tests
// =============================================================================

func TestGenerateEnum(t *testing.T) {
	enums := generate(t, true)["enums.rs"]

	assert.Contains(t, enums, derive+"\n#[serde(tag = \"@type\")]\npub enum TextEntityType {\n")
	assert.Contains(t, enums, "    /// A bold text\n    #[serde(rename = \"textEntityTypeBold\")]\n    Bold(::std::boxed::Box<super::types::TextEntityTypeBold>),\n")
	assert.Contains(t, enums, "    TextUrl(::std::boxed::Box<super::types::TextEntityTypeTextUrl>),\n")

	// no common prefix: the variant keeps the constructor name
	assert.Contains(t, enums, "    MessageText(::std::boxed::Box<super::types::MessageText>),\n")
	// the prefix is the whole name: nothing would remain
	assert.Contains(t, enums, "    Message(::std::boxed::Box<super::types::Message>),\n")
}

func TestGenerateEnum_Opaque(t *testing.T) {
	enums := generate(t, true)["enums.rs"]
	assert.Contains(t, enums, "/// Result of requests whose type the schema does not define. It has no variants.\n"+
		derive+"\n#[serde(tag = \"@type\")]\npub enum OptionValue {\n}\n")
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		enum, ctor, expected string
	}{
		{"ChatType", "ChatTypePrivate", "Private"},
		{"ChatType", "ChatTypes", "ChatTypes"},
		{"Message", "Message", "Message"},
		{"MessageContent", "MessageText", "MessageText"},
		{"Update", "UpdateNewMessage", "NewMessage"},
	}
	for _, tt := range tests {
		if got := variantName(tt.enum, tt.ctor); got != tt.expected {
			t.Errorf("variantName(%q, %q) = %q, want %q", tt.enum, tt.ctor, got, tt.expected)
		}
	}
}

// =============================================================================
// Function tests
// =============================================================================

func TestGenerateFunctions(t *testing.T) {
	functions := generate(t, true)["functions.rs"]

	assert.Contains(t, functions, "/// Returns information about a message\n"+derive+
		"\n#[serde(tag = \"@type\", rename = \"getMessage\")]\npub struct GetMessage {\n")
	assert.Contains(t, functions, "impl crate::RemoteFunction for GetMessage {\n    type Response = super::enums::Message;\n}\n")
	assert.Contains(t, functions, "pub struct Close {}\n")
	assert.Contains(t, functions, "    type Response = i64;\n")
	assert.Contains(t, functions, "    type Response = ::std::vec::Vec<::std::vec::Vec<super::enums::MessageContent>>;\n")
	assert.Contains(t, functions, "    type Response = super::enums::OptionValue;\n")
}

func TestRuntimeOption(t *testing.T) {
	schema, err := tl.LoadFile("../testdata/td_api.yaml", "")
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, tlgen.Generate(&sb, schema.Definitions, tlgen.Options{Backend: New(Options{Runtime: "tdlib::rt"})}))
	assert.Contains(t, sb.String(), "impl tdlib::rt::RemoteFunction for GetMessage {")
	assert.Contains(t, sb.String(), `#[serde(with = "tdlib::rt::int64")]`)
}

// =============================================================================
// Identifier conversion tests
// =============================================================================

func TestToRustIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"normal", "normal"},
		{"type", "r#type"},   // Rust keyword
		{"match", "r#match"}, // Rust keyword
		{"async", "r#async"}, // Rust keyword
		{"as", "r#as"},       // Rust keyword
		{"self", "self_"},    // cannot be a raw identifier
		{"Self", "Self_"},
		{"crate", "crate_"},
		{"not_keyword", "not_keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toRustIdent(tt.input)
			if result != tt.expected {
				t.Errorf("toRustIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNaming(t *testing.T) {
	r := tlgen.NewResolver(New(Options{}).Naming())

	tests := []struct {
		raw      string
		scope    tlgen.Scope
		owner    string
		expected string
	}{
		{"message", tlgen.ScopeType, "", "Message"},
		{"Message", tlgen.ScopeEnum, "", "Message"},
		{"getMessage", tlgen.ScopeFunction, "", "GetMessage"},
		{"chatId", tlgen.ScopeField, "type:chat", "chat_id"},
		{"self", tlgen.ScopeField, "type:chat", "self_"},
		{"auth.message", tlgen.ScopeType, "", "AuthMessage"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.raw, tt.scope, tt.owner)
		require.NoError(t, err)
		if got != tt.expected {
			t.Errorf("Resolve(%q, %s) = %q, want %q", tt.raw, tt.scope, got, tt.expected)
		}
	}
}
