package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/registry"
	id "warden/pkg/domain"
)

func TestDefault(t *testing.T) {
	groups, err := Default()
	require.NoError(t, err)

	counts := map[registry.Network]int{}
	for _, g := range groups {
		counts[g.Network]++
	}
	assert.Equal(t, 21, counts[registry.NetworkNS])
	assert.Equal(t, 32, counts[registry.NetworkMK])
	assert.Equal(t, 10, counts[registry.NetworkPARNI])

	first := groups[0]
	assert.Equal(t, id.GroupID(-1001465465654), first.ID)
	assert.True(t, first.Legacy)
	require.NotNil(t, first.RegionCode)
	assert.Equal(t, 45, *first.RegionCode)
}

func TestDefaultMKGroupsHaveNoRegion(t *testing.T) {
	groups, err := Default()
	require.NoError(t, err)
	for _, g := range groups {
		if g.Network == registry.NetworkMK {
			assert.Nil(t, g.RegionCode, "group %d", g.ID)
			assert.False(t, g.Legacy, "group %d", g.ID)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		wantLen int
	}{
		{
			name:    "valid",
			yaml:    "groups:\n  - id: -1\n    network: ns\n    label: A\n  - id: -2\n    network: PARNI\n    region: 66\n",
			wantLen: 2,
		},
		{name: "missing id", yaml: "groups:\n  - network: NS\n", wantErr: "id is required"},
		{name: "duplicate id", yaml: "groups:\n  - id: -1\n    network: NS\n  - id: -1\n    network: MK\n", wantErr: "duplicate id"},
		{name: "unknown network", yaml: "groups:\n  - id: -1\n    network: XX\n", wantErr: "unknown network"},
		{name: "malformed", yaml: "groups: [", wantErr: "decode seed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, groups, tt.wantLen)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded list", func(t *testing.T) {
		groups, err := Load("")
		require.NoError(t, err)
		assert.Len(t, groups, 63)
	})

	t.Run("file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "groups.yaml")
		require.NoError(t, os.WriteFile(path, []byte("groups:\n  - id: -42\n    network: MK\n    label: test\n"), 0o600))

		groups, err := Load(path)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, registry.NetworkMK, groups[0].Network)
		assert.Equal(t, "test", groups[0].Label)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
