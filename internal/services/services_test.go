package services

import (
	"testing"

	"github.com/lk16/othello-agent/internal/config"
	"github.com/stretchr/testify/require"
)

func TestInitServices_NothingConfigured(t *testing.T) {
	services, err := InitServices(&config.Config{})
	require.NoError(t, err)
	require.Nil(t, services.Postgres)
	require.Nil(t, services.Redis)

	services.Close()
}

func TestInitRedis_InvalidURL(t *testing.T) {
	_, err := InitRedis("not a redis url")
	require.ErrorContains(t, err, "error parsing Redis URL")
}
