package trello

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"time"
)

const dueDateLayout = "2 Jan at 15:04 MST"

// Summary is the render-ready projection of a fetched board or card.
type Summary struct {
	Title       string
	Description string
	Colour      int
	Footer      string
	Fields      []SummaryField
}

// SummaryField is a named group of lines, used for card checklists.
type SummaryField struct {
	Name   string
	Value  string
	Inline bool
}

// MapBoard turns a board document into a summary.
func MapBoard(board *Board) (*Summary, error) {
	if board.Name == nil || board.Desc == nil || board.Closed == nil {
		return nil, errors.New("board response missing required fields")
	}

	var sb strings.Builder
	if *board.Closed {
		sb.WriteString("**This board is closed**\n\n")
	}
	desc := *board.Desc
	if strings.TrimSpace(desc) == "" {
		desc = "Description empty"
	}
	sb.WriteString(desc)

	return &Summary{
		Title:       *board.Name,
		Description: sb.String(),
		Colour:      boardColour(board.Prefs.BackgroundBottomColor),
	}, nil
}

// boardColour parses the board's background colour preference, a hex value
// with a leading '#'. Anything unparseable falls back to the null colour.
func boardColour(pref string) int {
	hex := strings.TrimPrefix(pref, "#")
	colour, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return int(LabelColourNull)
	}
	return int(colour)
}

// MapCard turns a card document into a summary. The sections of the
// description appear in a fixed order; optional sections are omitted when
// empty. now decides whether an incomplete due date counts as overdue.
func MapCard(card *Card, now time.Time) (*Summary, error) {
	if card.Name == nil || card.Desc == nil || card.Closed == nil || card.List == nil || card.Board == nil {
		return nil, errors.New("card response missing required fields")
	}

	var sb strings.Builder
	if *card.Closed {
		sb.WriteString("**This card is closed**\n")
	}

	if card.Due != nil {
		marker := ""
		switch {
		case card.DueComplete:
			marker = " ✅"
		case card.Due.Before(now):
			marker = " ❌"
		}
		appendInfo(&sb, "Due", card.Due.Format(dueDateLayout)+marker)
	}

	if len(card.Members) > 0 {
		names := make([]string, 0, len(card.Members))
		for _, member := range card.Members {
			names = append(names, member.Username)
		}
		slices.Sort(names)
		appendInfo(&sb, "Members", strings.Join(names, ", "))
	}

	appendInfo(&sb, "List", card.List.Name)

	colour := LabelColourNull
	if len(card.Labels) > 0 {
		names := make([]string, 0, len(card.Labels))
		for i, label := range card.Labels {
			labelColour, known := LabelColourFromString(label.Color)
			if !known {
				log.Printf("Unknown label colour %q, using fallback", label.Color)
			}
			if i == 0 {
				colour = labelColour
			}
			names = append(names, label.Name)
		}
		appendInfo(&sb, "Labels", strings.Join(names, ", "))
	}

	desc := *card.Desc
	if strings.TrimSpace(desc) == "" {
		desc = "Empty"
	}
	appendInfo(&sb, "Desc", desc)

	summary := &Summary{
		Title:       *card.Name,
		Description: sb.String(),
		Colour:      int(colour),
		Footer:      card.Board.Name,
	}

	// Checklists become embed fields, both lists and items ordered by
	// Trello's position key. Sorting works on copies so mapping the same
	// document twice yields the same result.
	if len(card.Checklists) > 0 {
		checklists := slices.Clone(card.Checklists)
		slices.SortStableFunc(checklists, func(a, b Checklist) int {
			return cmpFloat(a.Pos, b.Pos)
		})
		for _, checklist := range checklists {
			items := slices.Clone(checklist.CheckItems)
			slices.SortStableFunc(items, func(a, b CheckItem) int {
				return cmpFloat(a.Pos, b.Pos)
			})
			var lines strings.Builder
			for _, item := range items {
				if strings.EqualFold(item.State, "complete") {
					lines.WriteString("☑️ ")
				} else {
					lines.WriteString("🔘 ")
				}
				lines.WriteString(item.Name)
				lines.WriteString("\n")
			}
			summary.Fields = append(summary.Fields, SummaryField{
				Name:   checklist.Name,
				Value:  lines.String(),
				Inline: true,
			})
		}
	}

	return summary, nil
}

func appendInfo(sb *strings.Builder, name string, value string) {
	fmt.Fprintf(sb, "**%s:** %s\n", name, value)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
