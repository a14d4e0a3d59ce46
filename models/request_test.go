package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidRequestStatus(t *testing.T) {
	for _, s := range []string{RequestPending, RequestInProgress, RequestCompleted, RequestRejected} {
		require.True(t, ValidRequestStatus(s), s)
	}

	for _, s := range []string{"", "pending", "ARCHIVED", "DONE", "Pending "} {
		require.False(t, ValidRequestStatus(s), s)
	}
}

func TestValidProjectType(t *testing.T) {
	for _, p := range ProjectTypes {
		require.True(t, ValidProjectType(p), p)
	}

	require.False(t, ValidProjectType(""))
	require.False(t, ValidProjectType("interior design"))
	require.False(t, ValidProjectType("logo"))
}
