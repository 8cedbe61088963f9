package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing JWT secret fails", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("DB_NAME", "jemaat")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("defaults and overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("DB_NAME", "jemaat")
		t.Setenv("APP_ENV", "Development")
		t.Setenv("QUERY_CACHE_SECONDS", "120")
		t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

		cfg, err := Load()
		require.NoError(t, err)

		assert.True(t, cfg.IsDevelopment())
		assert.Equal(t, 120, cfg.QueryCacheSeconds)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		assert.Contains(t, cfg.DB.DSN(), "/jemaat?sslmode=")
	})

	t.Run("DATABASE_URL wins", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.DSN())
	})
}

func TestOSSUploadCredentials(t *testing.T) {
	o := OSSConfig{Endpoint: "oss.test", AccessKey: "pub", SecretKey: "pub-secret"}
	ak, sk := o.UploadCredentials()
	assert.Equal(t, "pub", ak)
	assert.Equal(t, "pub-secret", sk)

	o.ServiceAccessKey, o.ServiceSecretKey = "svc", "svc-secret"
	ak, sk = o.UploadCredentials()
	assert.Equal(t, "svc", ak)
	assert.Equal(t, "svc-secret", sk)
	assert.True(t, o.Enabled())
}
