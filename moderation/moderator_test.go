package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_CensorMasksMatches(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"idiot", "scammer"}, '*')
	req.NoError(err)

	req.Equal("you *****", moderator.Censor("you idiot"))
	req.Equal("you ***** and *******", moderator.Censor("you IDIOT and ScAmMeR"))
	req.Equal("hello world", moderator.Censor("hello world"))
	req.Equal("", moderator.Censor(""))
}

func TestDefaultWords_LoadsEmbeddedList(t *testing.T) {
	req := require.New(t)
	words, err := DefaultWords()
	req.NoError(err)
	req.NotEmpty(words)
	req.Contains(words, "idiot")
	req.NotContains(words, "")
}
