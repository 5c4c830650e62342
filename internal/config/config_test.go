package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/fee-payment-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "payments")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("BACKEND_SERVICE_TOKEN", "service-token")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "sandbox", conf.Esewa.Environment)
	assert.Equal(t, "https://rc-epay.esewa.com.np/api/epay/main/v2/form", conf.Esewa.GatewayURL())
	assert.Equal(t, 10*time.Second, conf.Backend.Timeout)
	assert.Empty(t, conf.Redis.Addr)
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("ESEWA_ENV", "production")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("CACHE_CAPACITY", "not a number")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "https://epay.esewa.com.np/api/epay/main/v2/form", conf.Esewa.GatewayURL())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, conf.Backend.Timeout)
	assert.Equal(t, 1000, conf.Cache.Capacity)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown gateway environment", key: "ESEWA_ENV", val: "staging"},
		{name: "unknown app environment", key: "ENV", val: "dev"},
		{name: "backend url", key: "BACKEND_URL", val: "not a url"},
		{name: "broker address", key: "KAFKA_BROKERS", val: "kafka"},
		{name: "missing service token", key: "BACKEND_SERVICE_TOKEN", val: ""},
		{name: "redis address", key: "REDIS_ADDR", val: "redis"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.val)

			assert.Error(t, config.New().Validate())
		})
	}
}
