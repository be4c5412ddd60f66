package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestAppendUpdatesPreview(t *testing.T) {
	g := Seed()[0]

	msg, err := Outgoing(TypeText, "  Hẹn gặp lại ", "", "17:02")
	require.NoError(t, err)
	g.Append(msg)
	assert.Equal(t, "Hẹn gặp lại", g.LastMessage)
	assert.Equal(t, "17:02", g.LastMessageTime)

	voice, err := Outgoing(TypeVoice, "", "", "17:03")
	require.NoError(t, err)
	g.Append(voice)
	assert.Equal(t, VoicePreviewText, g.LastMessage)
	assert.Equal(t, VoiceDuration, g.Messages[len(g.Messages)-1].VoiceDuration)
}

func TestOutgoingValidation(t *testing.T) {
	_, err := Outgoing(TypeText, "   ", "", "10:00")
	assert.True(t, httperr.IsBusiness(err, "empty_message"))

	_, err = Outgoing(TypeImage, "", "", "10:00")
	assert.True(t, httperr.IsBusiness(err, "missing_image"))

	_, err = Outgoing("sticker", "hi", "", "10:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_message_type"))
}

func TestMatches(t *testing.T) {
	groups := Seed()

	assert.True(t, groups[0].Matches("classic"))
	assert.True(t, groups[1].Matches("THỨ 7"))
	assert.False(t, groups[2].Matches("mullet"))
	assert.True(t, groups[2].Matches(""))
}
