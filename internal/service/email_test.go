package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailServiceDisabledWithoutAPIKey(t *testing.T) {
	s := NewEmailService("", "noreply@springvale.test", "Springvale Christian Academy", false)
	require.False(t, s.Enabled())

	err := s.SendApplicationReceived("jane@example.com", "Jane")
	require.Error(t, err, "sending while unconfigured should surface an error to the caller that logs it")
}

func TestEmailServiceDevModeLogsInsteadOfSending(t *testing.T) {
	s := NewEmailService("re_test_key", "noreply@springvale.test", "Springvale Christian Academy", true)
	require.True(t, s.Enabled())

	// Dev mode never talks to the API, so this must succeed offline
	err := s.SendApplicationReceived("jane@example.com", "Jane")
	require.NoError(t, err)
}
