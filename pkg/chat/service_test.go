package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/models"
	"github.com/agriadvisor/agriadvisor-go/pkg/user"
)

func setupTestService(t *testing.T) (*Service, *models.User) {
	t.Helper()

	store := metadatastore.NewMemoryStore()
	users := user.NewService(store)
	u, err := users.Create(&models.UserCreateRequest{
		Username: "meena",
		Email:    "meena@gmail.com",
		Phone:    "9123456789",
	})
	require.NoError(t, err)

	return NewService(store, users), u
}

func TestSendAndHistory(t *testing.T) {
	service, u := setupTestService(t)

	first, err := service.Send(u.ID, "  When should I sow wheat?  ")
	require.NoError(t, err)
	assert.Equal(t, "When should I sow wheat?", first.Message)
	assert.Equal(t, AssistantReply, first.Response)
	assert.NotEmpty(t, first.ID)

	_, err = service.Send(u.ID, "Which fertilizer for rice?")
	require.NoError(t, err)

	history, err := service.History(u.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Which fertilizer for rice?", history[0].Message)
	assert.Equal(t, "When should I sow wheat?", history[1].Message)
}

func TestSendRejectsInvalidMessages(t *testing.T) {
	service, u := setupTestService(t)

	_, err := service.Send(u.ID, "   ")
	assert.True(t, errors.Is(err, ErrInvalidMessage))

	_, err = service.Send(u.ID, strings.Repeat("a", maxMessageLength+1))
	assert.True(t, errors.Is(err, ErrInvalidMessage))
}

func TestUnknownUser(t *testing.T) {
	service, _ := setupTestService(t)

	_, err := service.Send("ghost", "hello")
	assert.True(t, errors.Is(err, user.ErrUserNotFound))

	_, err = service.History("ghost")
	assert.True(t, errors.Is(err, user.ErrUserNotFound))
}
