package trello

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReferences(t *testing.T) {
	refs := ExtractReferences("check https://trello.com/c/AbCd12 and trello.com/b/Xyz99")
	assert.Equal(t, []Reference{
		{Type: EntityCard, ID: "AbCd12"},
		{Type: EntityBoard, ID: "Xyz99"},
	}, refs)
}

func TestExtractReferencesSkipsUnknownType(t *testing.T) {
	refs := ExtractReferences("see trello.com/x/Foo and trello.com/c/Bar")
	assert.Equal(t, []Reference{{Type: EntityCard, ID: "Bar"}}, refs)
}

func TestExtractReferencesCaseInsensitive(t *testing.T) {
	refs := ExtractReferences("HTTPS://TRELLO.COM/B/abc")
	assert.Equal(t, []Reference{{Type: EntityBoard, ID: "abc"}}, refs)
}

func TestExtractReferencesInviteLinks(t *testing.T) {
	refs := ExtractReferences("join https://trello.com/invite/b/aBc123")
	assert.Equal(t, []Reference{{Type: EntityBoard, ID: "aBc123"}}, refs)
}

func TestExtractReferencesNoMatch(t *testing.T) {
	assert.Empty(t, ExtractReferences("no links here, not even https://example.com/c/nope"))
}
