package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thequad/api/internal/app/models"
)

func TestSlotToResponseRelabelsBookedForMentor(t *testing.T) {
	slot := &models.MentorSlot{
		ID:         1,
		MentorID:   7,
		MentorName: "Priya Nair",
		Topic:      "System design basics",
		Status:     models.MentorSlotBooked,
	}

	// A booked slot reads as a pending request in the mentor's own view
	assert.Equal(t, "pending", slotToResponse(slot, true).Status)

	// Everyone else sees the stored status
	assert.Equal(t, string(models.MentorSlotBooked), slotToResponse(slot, false).Status)
}

func TestSlotToResponseLeavesOtherStatusesAlone(t *testing.T) {
	for _, status := range []models.MentorSlotStatus{
		models.MentorSlotAvailable,
		models.MentorSlotConfirmed,
		models.MentorSlotCompleted,
	} {
		slot := &models.MentorSlot{Status: status}
		assert.Equal(t, string(status), slotToResponse(slot, true).Status)
		assert.Equal(t, string(status), slotToResponse(slot, false).Status)
	}
}
