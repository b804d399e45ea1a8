package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `1500`, 1500},
		{"decimal", `79.5`, 79.5},
		{"quoted number", `"1200"`, 1200},
		{"negative", `-40`, -40},
		{"empty string", `""`, 0},
		{"garbage", `"abc"`, 0},
		{"null", `null`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &a))
			assert.Equal(t, tc.want, a.Float64())
		})
	}
}

func TestAmountInStruct(t *testing.T) {
	var payload struct {
		Apartment Amount `json:"apartment"`
		Tuition   Amount `json:"tuition"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"apartment":"1500","tuition":"n/a"}`), &payload))
	assert.Equal(t, 1500.0, payload.Apartment.Float64())
	assert.Equal(t, 0.0, payload.Tuition.Float64())
}
