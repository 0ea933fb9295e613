package envconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFallsBackWhenEmpty(t *testing.T) {
	t.Setenv("HUNT_TEST_VALUE", "")
	assert.Equal(t, "fallback", Get("HUNT_TEST_VALUE", "fallback"))

	t.Setenv("HUNT_TEST_VALUE", "set")
	assert.Equal(t, "set", Get("HUNT_TEST_VALUE", "fallback"))
}

func TestGetBool(t *testing.T) {
	t.Setenv("HUNT_TEST_BOOL", "true")
	assert.True(t, GetBool("HUNT_TEST_BOOL", false))

	t.Setenv("HUNT_TEST_BOOL", "nope")
	assert.True(t, GetBool("HUNT_TEST_BOOL", true))
}

func TestGetInt(t *testing.T) {
	t.Setenv("HUNT_TEST_INT", " 64 ")
	assert.Equal(t, 64, GetInt("HUNT_TEST_INT", 1))

	t.Setenv("HUNT_TEST_INT", "lots")
	assert.Equal(t, 1, GetInt("HUNT_TEST_INT", 1))
}

func TestGetList(t *testing.T) {
	t.Setenv("HUNT_TEST_LIST", " a.example ,, b.example ")
	assert.Equal(t, []string{"a.example", "b.example"}, GetList("HUNT_TEST_LIST", nil))

	t.Setenv("HUNT_TEST_LIST", " , ")
	assert.Equal(t, []string{"*"}, GetList("HUNT_TEST_LIST", []string{"*"}))
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HUNT_DOTENV_A=from-file\nHUNT_DOTENV_B=from-file\n"), 0o644))

	t.Setenv("HUNT_DOTENV_A", "from-env")
	t.Cleanup(func() { os.Unsetenv("HUNT_DOTENV_B") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv("HUNT_DOTENV_A"))
	assert.Equal(t, "from-file", os.Getenv("HUNT_DOTENV_B"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestValidate(t *testing.T) {
	type sample struct {
		Mode string `validate:"oneof=a b"`
	}
	assert.NoError(t, Validate(sample{Mode: "a"}))
	assert.Error(t, Validate(sample{Mode: "c"}))
}
