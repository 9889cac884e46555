// Package params implements the Banquet parameter-set table.
//
// The field and polynomial engines only consume [Instance.Lambda], which selects
// the extension field GF(2^(8*Lambda)) used by the MPC protocol.
package params

import (
	"errors"
	"fmt"

	"github.com/mpcith/banquet/utils"
)

// ErrInvalidParameterSet is returned when a parameter set identifier is
// reserved or out of range.
var ErrInvalidParameterSet = errors.New("invalid parameter set")

// ParameterSet identifies one of the Banquet instances.
type ParameterSet int

const (
	// Invalid is the reserved zero value.
	Invalid ParameterSet = iota
	L1Param1
	L1Param2
	L1Param3
	L1Param4
	L1Param5
	L1Param6
	L1Param7
	L1Param8
	L1Param9
	L1Param10
	L3Param1
	L5Param1
	maxParameterSet
)

var parameterSetNames = map[ParameterSet]string{
	L1Param1:  "Banquet_L1_Param1",
	L1Param2:  "Banquet_L1_Param2",
	L1Param3:  "Banquet_L1_Param3",
	L1Param4:  "Banquet_L1_Param4",
	L1Param5:  "Banquet_L1_Param5",
	L1Param6:  "Banquet_L1_Param6",
	L1Param7:  "Banquet_L1_Param7",
	L1Param8:  "Banquet_L1_Param8",
	L1Param9:  "Banquet_L1_Param9",
	L1Param10: "Banquet_L1_Param10",
	L3Param1:  "Banquet_L3_Param1",
	L5Param1:  "Banquet_L5_Param1",
}

// AESParameters describes the AES instance whose circuit is proven.
type AESParameters struct {
	KeySize   int `json:"key_size"`
	BlockSize int `json:"block_size"`
	NumBlocks int `json:"num_blocks"`
	NumSboxes int `json:"num_sboxes"`
}

var (
	aes128 = AESParameters{KeySize: 16, BlockSize: 16, NumBlocks: 1, NumSboxes: 200}
	aes192 = AESParameters{KeySize: 24, BlockSize: 16, NumBlocks: 2, NumSboxes: 416}
	aes256 = AESParameters{KeySize: 32, BlockSize: 16, NumBlocks: 2, NumSboxes: 500}
)

// Instance is the record describing a Banquet parameter set. Lambda is the
// byte size of the extension field elements: 4, 5 or 6.
type Instance struct {
	AES        AESParameters `json:"aes"`
	DigestSize int           `json:"digest_size"`
	SeedSize   int           `json:"seed_size"`
	NumRounds  int           `json:"num_rounds"`
	NumParties int           `json:"num_parties"`
	M1         int           `json:"m1"`
	M2         int           `json:"m2"`
	Lambda     int           `json:"lambda"`
	Set        ParameterSet  `json:"parameter_set"`
}

var instances = [maxParameterSet]Instance{
	{},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 31, NumParties: 64, M1: 10, M2: 20, Lambda: 4, Set: L1Param1},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 31, NumParties: 64, M1: 20, M2: 10, Lambda: 4, Set: L1Param2},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 29, NumParties: 64, M1: 10, M2: 20, Lambda: 5, Set: L1Param3},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 27, NumParties: 64, M1: 10, M2: 20, Lambda: 6, Set: L1Param4},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 28, NumParties: 128, M1: 10, M2: 20, Lambda: 4, Set: L1Param5},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 26, NumParties: 128, M1: 10, M2: 20, Lambda: 5, Set: L1Param6},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 24, NumParties: 128, M1: 10, M2: 20, Lambda: 6, Set: L1Param7},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 25, NumParties: 256, M1: 10, M2: 20, Lambda: 4, Set: L1Param8},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 23, NumParties: 256, M1: 10, M2: 20, Lambda: 5, Set: L1Param9},
	{AES: aes128, DigestSize: 32, SeedSize: 16, NumRounds: 21, NumParties: 256, M1: 10, M2: 20, Lambda: 6, Set: L1Param10},
	{AES: aes192, DigestSize: 48, SeedSize: 24, NumRounds: 38, NumParties: 64, M1: 16, M2: 26, Lambda: 4, Set: L3Param1},
	{AES: aes256, DigestSize: 64, SeedSize: 32, NumRounds: 50, NumParties: 64, M1: 20, M2: 25, Lambda: 4, Set: L5Param1},
}

// Get returns the Instance of the parameter set ps.
func Get(ps ParameterSet) (Instance, error) {
	if !ps.Valid() {
		return Instance{}, fmt.Errorf("%w: %d", ErrInvalidParameterSet, int(ps))
	}
	return instances[ps], nil
}

// MustGet is like Get but panics if ps is invalid.
func MustGet(ps ParameterSet) Instance {
	inst, err := Get(ps)
	if err != nil {
		panic(err)
	}
	return inst
}

// All returns every valid parameter set in ascending order.
func All() []ParameterSet {
	return utils.GetSortedKeys(parameterSetNames)
}

// Names returns the sorted names of the valid parameter sets.
func Names() []string {
	names := make([]string, 0, len(parameterSetNames))
	for _, name := range parameterSetNames {
		names = append(names, name)
	}
	utils.SortSlice(names)
	return names
}

// Valid returns true if ps designates a usable parameter set.
func (ps ParameterSet) Valid() bool {
	return ps > Invalid && ps < maxParameterSet
}

func (ps ParameterSet) String() string {
	if name, ok := parameterSetNames[ps]; ok {
		return name
	}
	return fmt.Sprintf("ParameterSet(%d)", int(ps))
}

// ParameterSetFromString returns the parameter set named s.
func ParameterSetFromString(s string) (ParameterSet, error) {
	for ps, name := range parameterSetNames {
		if name == s {
			return ps, nil
		}
	}
	return Invalid, fmt.Errorf("%w: unknown name %q", ErrInvalidParameterSet, s)
}

// MarshalText encodes ps as its name.
func (ps ParameterSet) MarshalText() ([]byte, error) {
	if !ps.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParameterSet, int(ps))
	}
	return []byte(ps.String()), nil
}

// UnmarshalText decodes a parameter set name into ps.
func (ps *ParameterSet) UnmarshalText(text []byte) (err error) {
	*ps, err = ParameterSetFromString(string(text))
	return
}
