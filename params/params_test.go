package params

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {

	t.Run("Reserved", func(t *testing.T) {
		_, err := Get(Invalid)
		require.ErrorIs(t, err, ErrInvalidParameterSet)
		_, err = Get(maxParameterSet)
		require.ErrorIs(t, err, ErrInvalidParameterSet)
		_, err = Get(-1)
		require.ErrorIs(t, err, ErrInvalidParameterSet)
		require.Panics(t, func() { MustGet(Invalid) })
	})

	t.Run("Table", func(t *testing.T) {
		for _, ps := range All() {
			inst, err := Get(ps)
			require.NoError(t, err)
			require.Equal(t, ps, inst.Set)
			require.Contains(t, []int{4, 5, 6}, inst.Lambda, ps.String())
			require.Equal(t, 2*inst.SeedSize, inst.DigestSize, ps.String())
		}

		inst := MustGet(L1Param4)
		require.Equal(t, 6, inst.Lambda)
		require.Equal(t, 27, inst.NumRounds)
		require.Equal(t, 200, inst.AES.NumSboxes)

		inst = MustGet(L5Param1)
		require.Equal(t, 4, inst.Lambda)
		require.Equal(t, 32, inst.AES.KeySize)
		require.Equal(t, 25, inst.M2)
	})

	t.Run("Names", func(t *testing.T) {
		names := Names()
		require.Len(t, names, len(All()))
		require.Equal(t, "Banquet_L1_Param1", names[0])
		require.Equal(t, "Banquet_L5_Param1", names[len(names)-1])
		require.True(t, sort.StringsAreSorted(names))

		all := All()
		require.Equal(t, L1Param1, all[0])
		require.Equal(t, L5Param1, all[len(all)-1])
		for i, ps := range all {
			require.Equal(t, ParameterSet(i+1), ps)
			require.Contains(t, names, ps.String())
		}

		for _, ps := range All() {
			got, err := ParameterSetFromString(ps.String())
			require.NoError(t, err)
			require.Equal(t, ps, got)
		}

		_, err := ParameterSetFromString("Banquet_L2_Param1")
		require.ErrorIs(t, err, ErrInvalidParameterSet)
		require.Equal(t, "ParameterSet(0)", Invalid.String())
	})

	t.Run("JSON", func(t *testing.T) {
		inst := MustGet(L3Param1)
		data, err := json.Marshal(inst)
		require.NoError(t, err)
		require.Contains(t, string(data), `"parameter_set":"Banquet_L3_Param1"`)

		var got Instance
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, inst, got)

		_, err = json.Marshal(Instance{})
		require.Error(t, err)
	})
}
