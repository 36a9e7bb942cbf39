package rope

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero value defaults applied before validate", cfg: Config{}},
		{name: "positive leaf cap", cfg: Config{LeafCap: 4, MaxHeightLimit: 8, Source: rand.NewSource(1)}},
		{name: "negative leaf cap rejected", cfg: Config{LeafCap: -1, MaxHeightLimit: 8, Source: rand.NewSource(1)}, wantErr: true},
		{name: "height limit too large rejected", cfg: Config{LeafCap: 4, MaxHeightLimit: 256, Source: rand.NewSource(1)}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			cfg.setDefaults()
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNewWithConfigDefaults(t *testing.T) {
	r, err := NewWithConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), r.CharCount())
	assert.Equal(t, DefaultLeafCap, r.cfg.LeafCap)
	assert.Equal(t, MaxHeight, r.cfg.MaxHeightLimit)
}
