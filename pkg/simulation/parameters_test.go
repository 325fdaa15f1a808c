package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersUseBaseDefaults(t *testing.T) {
	params := Parameters(&Config{Name: "base", Iterations: 7, DebugMode: true})

	require.Len(t, params, 3)
	assert.Equal(t, ParamName, params[0].Name)
	assert.Equal(t, "base", params[0].Default)
	assert.Equal(t, TypeInteger, params[1].Type)
	assert.Equal(t, 7, params[1].Default)
	assert.Equal(t, true, params[2].Default)
}

func TestParametersNilBase(t *testing.T) {
	params := Parameters(nil)

	assert.Equal(t, DefaultName, params[0].Default)
	assert.Equal(t, DefaultIterations, params[1].Default)
	assert.Equal(t, DefaultDebugMode, params[2].Default)
}

func TestApplyParameters(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]interface{}
		want    Config
		wantErr bool
	}{
		{
			name:   "no params keeps defaults",
			params: map[string]interface{}{},
			want:   *DefaultConfig(),
		},
		{
			name: "all typed values",
			params: map[string]interface{}{
				"name":       "test-sim",
				"iterations": 10,
				"debug_mode": true,
			},
			want: Config{Name: "test-sim", Iterations: 10, DebugMode: true},
		},
		{
			name: "yaml and env shaped values",
			params: map[string]interface{}{
				"iterations": float64(42),
				"debug_mode": "true",
			},
			want: Config{Name: DefaultName, Iterations: 42, DebugMode: true},
		},
		{
			name:   "string iterations",
			params: map[string]interface{}{"iterations": "-3"},
			want:   Config{Name: DefaultName, Iterations: -3},
		},
		{
			name:   "unknown keys ignored",
			params: map[string]interface{}{"qubits": 5},
			want:   *DefaultConfig(),
		},
		{
			name:    "fractional iterations",
			params:  map[string]interface{}{"iterations": 1.5},
			want:    *DefaultConfig(),
			wantErr: true,
		},
		{
			name:    "name of wrong type",
			params:  map[string]interface{}{"name": 12, "iterations": 1},
			want:    *DefaultConfig(),
			wantErr: true,
		},
		{
			name:    "bad boolean",
			params:  map[string]interface{}{"debug_mode": "maybe"},
			want:    *DefaultConfig(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ApplyParameters(cfg, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, *cfg)
		})
	}
}
