package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thequad/api/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestFormatCrewApplicationBody(t *testing.T) {
	app := &models.CrewApplication{
		FullName:   "Arjun Mehta",
		Email:      "arjun@srmist.edu.in",
		Skills:     []string{"Photoshop", "Premiere Pro"},
		Experience: "Edited reels for two fests.",
		Message:    "Would love to join the media team!",
		ResumeName: strPtr("arjun_resume.pdf"),
	}

	expected := "📋 **New Crew Call Application**\n\n" +
		"**Position:** Video Editor\n" +
		"**Name:** Arjun Mehta\n" +
		"**Email:** arjun@srmist.edu.in\n" +
		"**Skills:** Photoshop, Premiere Pro\n\n" +
		"**Experience:**\nEdited reels for two fests.\n\n" +
		"**Message:**\nWould love to join the media team!\n\n" +
		"📎 Resume attached"

	assert.Equal(t, expected, formatCrewApplicationBody(app, "Video Editor"))
}

func TestFormatCrewApplicationBodyWithoutOptionalParts(t *testing.T) {
	app := &models.CrewApplication{
		FullName: "Priya Nair",
		Email:    "priya@srmist.edu.in",
		Skills:   []string{"Anchoring"},
		Message:  "Count me in.",
	}

	body := formatCrewApplicationBody(app, "Event Host")
	assert.NotContains(t, body, "**Experience:**")
	assert.NotContains(t, body, "📎 Resume attached")
	assert.True(t, strings.HasSuffix(body, "**Message:**\nCount me in."))
}

func TestFormatTeamJoinBody(t *testing.T) {
	req := &models.TeamJoinRequest{
		FullName: "Arjun Mehta",
		Email:    "arjun@srmist.edu.in",
		Skills:   []string{"React", "TypeScript"},
		Role:     "Frontend Developer",
		Bio:      "Second year CSE, built two hackathon projects.",
	}

	expected := "🤝 **Team Join Request**\n\n" +
		"**Team:** HackRush Crew\n" +
		"**Name:** Arjun Mehta\n" +
		"**Email:** arjun@srmist.edu.in\n" +
		"**Preferred Role:** Frontend Developer\n" +
		"**Skills:** React, TypeScript\n\n" +
		"**About:**\nSecond year CSE, built two hackathon projects."

	assert.Equal(t, expected, formatTeamJoinBody(req, "HackRush Crew"))
}

func TestFormatTeamJoinBodyWithResume(t *testing.T) {
	req := &models.TeamJoinRequest{
		FullName:   "Priya Nair",
		Email:      "priya@srmist.edu.in",
		Skills:     []string{"Go"},
		Role:       "Backend Developer",
		Bio:        "Backend enthusiast.",
		ResumeName: strPtr("priya.pdf"),
	}

	assert.True(t, strings.HasSuffix(formatTeamJoinBody(req, "Quad Hackers"), "\n\n📎 Resume attached"))
}

func TestMessagePreviewTruncation(t *testing.T) {
	short := "hello there"
	assert.Equal(t, short, messagePreview(short))

	long := strings.Repeat("a", 250)
	preview := messagePreview(long)
	assert.Len(t, preview, previewLimit)

	// Truncation counts runes, not bytes
	emoji := strings.Repeat("🎉", 120)
	assert.Equal(t, previewLimit, len([]rune(messagePreview(emoji))))
}

func TestMessagePreviewAtExactLimit(t *testing.T) {
	exact := strings.Repeat("b", previewLimit)
	assert.Equal(t, exact, messagePreview(exact))
}
