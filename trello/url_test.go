package trello

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLBuilderBuildsTemplate(t *testing.T) {
	template := NewURLBuilder("", "appkey").
		Create("boards").
		AddParam("fields", "name,desc,closed,prefs").
		Build()

	url := template.Instantiate("Xyz99", "tok1")
	assert.Equal(t, "https://api.trello.com/1/boards/Xyz99?key=appkey&token=tok1&fields=name%2Cdesc%2Cclosed%2Cprefs", url)
}

func TestURLBuilderKeepsParamOrder(t *testing.T) {
	template := NewURLBuilder("http://example.test/1", "k").
		Create("cards").
		AddParam("members", "true").
		AddParam("member_fields", "username").
		Build()

	url := template.Instantiate("id", "tok")
	assert.Equal(t, "http://example.test/1/cards/id?key=k&token=tok&members=true&member_fields=username", url)
}

func TestURLBuilderEscapesIDAndToken(t *testing.T) {
	template := NewURLBuilder("", "k").Create("cards").Build()

	url := template.Instantiate("a b", "t&k=1")
	assert.Equal(t, "https://api.trello.com/1/cards/a%20b?key=k&token=t%26k%3D1", url)
}

func TestURLBuilderCreateResetsParams(t *testing.T) {
	builder := NewURLBuilder("", "k")
	builder.Create("boards").AddParam("fields", "name").Build()

	fresh := builder.Create("cards").Build()
	assert.Equal(t, "https://api.trello.com/1/cards/id?key=k&token=t", fresh.Instantiate("id", "t"))
}
