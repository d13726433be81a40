package trello

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func minimalCard() *Card {
	return &Card{
		Name:   strPtr("Task"),
		Desc:   strPtr(""),
		Closed: boolPtr(false),
		Board:  &NamedRef{Name: "Proj"},
		List:   &NamedRef{Name: "Doing"},
	}
}

func TestMapCardMinimal(t *testing.T) {
	summary, err := MapCard(minimalCard(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Task", summary.Title)
	assert.Equal(t, "**List:** Doing\n**Desc:** Empty\n", summary.Description)
	assert.Equal(t, "Proj", summary.Footer)
	assert.Equal(t, int(LabelColourNull), summary.Colour)
	assert.Empty(t, summary.Fields)
}

func TestMapCardClosedMarker(t *testing.T) {
	card := minimalCard()
	card.Closed = boolPtr(true)

	summary, err := MapCard(card, time.Now())
	require.NoError(t, err)
	assert.Contains(t, summary.Description, "**This card is closed**\n")
}

func TestMapCardDueMarkers(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	card := minimalCard()
	card.Due = &past
	summary, err := MapCard(card, now)
	require.NoError(t, err)
	assert.Contains(t, summary.Description, "**Due:** "+past.Format(dueDateLayout)+" ❌\n")

	card.DueComplete = true
	summary, err = MapCard(card, now)
	require.NoError(t, err)
	assert.Contains(t, summary.Description, past.Format(dueDateLayout)+" ✅\n")

	card.DueComplete = false
	card.Due = &future
	summary, err = MapCard(card, now)
	require.NoError(t, err)
	assert.Contains(t, summary.Description, "**Due:** "+future.Format(dueDateLayout)+"\n")
}

func TestMapCardSortsMembers(t *testing.T) {
	card := minimalCard()
	card.Members = []Member{{Username: "zed"}, {Username: "amy"}, {Username: "mia"}}

	summary, err := MapCard(card, time.Now())
	require.NoError(t, err)
	assert.Contains(t, summary.Description, "**Members:** amy, mia, zed\n")
}

func TestMapCardLabelColourFallback(t *testing.T) {
	card := minimalCard()
	card.Labels = []Label{
		{Name: "odd", Color: "mystery"},
		{Name: "urgent", Color: "red"},
	}

	summary, err := MapCard(card, time.Now())
	require.NoError(t, err)

	// The first label decides the accent colour; an unknown colour name
	// falls back without dropping the other labels.
	assert.Equal(t, int(LabelColourNull), summary.Colour)
	assert.Contains(t, summary.Description, "**Labels:** odd, urgent\n")
}

func TestMapCardFirstLabelColour(t *testing.T) {
	card := minimalCard()
	card.Labels = []Label{{Name: "go", Color: "green"}, {Name: "stop", Color: "red"}}

	summary, err := MapCard(card, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int(LabelColourGreen), summary.Colour)
}

func TestMapCardChecklistOrdering(t *testing.T) {
	card := minimalCard()
	card.Checklists = []Checklist{
		{
			Name: "Second",
			Pos:  200,
			CheckItems: []CheckItem{
				{Name: "b", State: "incomplete", Pos: 2},
				{Name: "a", State: "complete", Pos: 1},
			},
		},
		{
			Name:       "First",
			Pos:        100,
			CheckItems: []CheckItem{{Name: "only", State: "incomplete", Pos: 1}},
		},
	}

	summary, err := MapCard(card, time.Now())
	require.NoError(t, err)

	require.Len(t, summary.Fields, 2)
	assert.Equal(t, "First", summary.Fields[0].Name)
	assert.Equal(t, "Second", summary.Fields[1].Name)
	assert.Equal(t, "☑️ a\n🔘 b\n", summary.Fields[1].Value)
	assert.True(t, summary.Fields[0].Inline)
}

func TestMapCardIdempotent(t *testing.T) {
	card := minimalCard()
	card.Members = []Member{{Username: "zed"}, {Username: "amy"}}
	card.Checklists = []Checklist{
		{Name: "L", Pos: 2, CheckItems: []CheckItem{{Name: "y", Pos: 2}, {Name: "x", Pos: 1}}},
		{Name: "K", Pos: 1},
	}

	now := time.Now()
	first, err := MapCard(card, now)
	require.NoError(t, err)
	second, err := MapCard(card, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMapCardMissingRequiredFields(t *testing.T) {
	card := minimalCard()
	card.Name = nil
	_, err := MapCard(card, time.Now())
	assert.Error(t, err)

	card = minimalCard()
	card.List = nil
	_, err = MapCard(card, time.Now())
	assert.Error(t, err)
}

func TestMapBoard(t *testing.T) {
	board := &Board{
		Name:   strPtr("Proj"),
		Desc:   strPtr("A board"),
		Closed: boolPtr(false),
	}
	board.Prefs.BackgroundBottomColor = "#0079bf"

	summary, err := MapBoard(board)
	require.NoError(t, err)
	assert.Equal(t, "Proj", summary.Title)
	assert.Equal(t, "A board", summary.Description)
	assert.Equal(t, 0x0079bf, summary.Colour)
	assert.Empty(t, summary.Footer)
}

func TestMapBoardClosedAndEmptyDescription(t *testing.T) {
	board := &Board{
		Name:   strPtr("Old"),
		Desc:   strPtr(""),
		Closed: boolPtr(true),
	}

	summary, err := MapBoard(board)
	require.NoError(t, err)
	assert.Equal(t, "**This board is closed**\n\nDescription empty", summary.Description)
	assert.Equal(t, int(LabelColourNull), summary.Colour)
}

func TestMapBoardMissingRequiredFields(t *testing.T) {
	_, err := MapBoard(&Board{Name: strPtr("x"), Desc: strPtr("y")})
	assert.Error(t, err)
}
