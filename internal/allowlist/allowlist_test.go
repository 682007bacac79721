package allowlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

func TestDefault(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 17, a.Len())

	list := a.List()
	assert.Equal(t, models.AllowedCurrency{Code: "USD", Name: "Dólar Americano"}, list[0])
	assert.Equal(t, models.AllowedCurrency{Code: "SOL", Name: "Solana"}, list[len(list)-1])

	name, ok := a.Lookup("BTC")
	assert.True(t, ok)
	assert.Equal(t, "Bitcoin", name)
}

func TestLookup(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	tests := []struct {
		code   string
		wantOK bool
	}{
		{"USD", true},
		{"EUR", true},
		{"usd", false},
		{"XXX", false},
		{"US", false},
		{"", false},
		{"USDT", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			_, ok := a.Lookup(tt.code)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)

	list := a.List()
	list[0].Name = "changed"

	assert.Equal(t, "Dólar Americano", a.List()[0].Name)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		wantLen int
	}{
		{
			name:    "valid",
			data:    "currencies:\n  - code: USD\n    name: Dollar\n  - code: EUR\n    name: Euro\n",
			wantLen: 2,
		},
		{
			name:    "malformed yaml",
			data:    "currencies: [",
			wantErr: true,
		},
		{
			name:    "empty list",
			data:    "currencies: []\n",
			wantErr: true,
		},
		{
			name:    "short code",
			data:    "currencies:\n  - code: US\n    name: Dollar\n",
			wantErr: true,
		},
		{
			name:    "lowercase code",
			data:    "currencies:\n  - code: usd\n    name: Dollar\n",
			wantErr: true,
		},
		{
			name:    "missing name",
			data:    "currencies:\n  - code: USD\n",
			wantErr: true,
		},
		{
			name:    "duplicate code",
			data:    "currencies:\n  - code: USD\n    name: Dollar\n  - code: USD\n    name: Again\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, a)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantLen, a.Len())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		a, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 17, a.Len())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "allow.yaml")
		require.NoError(t, os.WriteFile(path, []byte("currencies:\n  - code: BRL\n    name: Real\n"), 0o600))

		a, err := Load(path)
		require.NoError(t, err)
		name, ok := a.Lookup("BRL")
		assert.True(t, ok)
		assert.Equal(t, "Real", name)
		_, ok = a.Lookup("USD")
		assert.False(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
